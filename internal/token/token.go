// Package token defines the lexical tokens produced while scanning a
// regrex pattern string.
package token

import "fmt"

// Kind identifies the type of a Token. Metacharacters get their own kind;
// every other byte lexes as Char.
type Kind uint8

const (
	// Char is a literal byte. Token.Value holds the byte.
	Char Kind = iota
	// Union is '|'.
	Union
	// LPar is '('.
	LPar
	// RPar is ')'.
	RPar
	// Star is '*'.
	Star
	// Plus is '+'.
	Plus
	// End marks end of input. Idempotent: once reached, every further
	// call to Lexer.Next returns End again.
	End
)

// String returns a human-readable name for the kind, useful in error
// messages and tests.
func (k Kind) String() string {
	switch k {
	case Char:
		return "CHAR"
	case Union:
		return "UNION"
	case LPar:
		return "LPAR"
	case RPar:
		return "RPAR"
	case Star:
		return "STAR"
	case Plus:
		return "PLUS"
	case End:
		return "END"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is a single lexed unit: a Kind and, for Char, the literal byte.
type Token struct {
	Kind  Kind
	Value byte // only meaningful when Kind == Char
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.Kind == Char {
		return fmt.Sprintf("CHAR(%q)", t.Value)
	}
	return t.Kind.String()
}
