package token

// Lexer is a byte cursor over a pattern string. It has no lookahead of its
// own; callers drive it one token at a time via Next.
//
// There is no whitespace handling and no escape mechanism: every byte that
// is not one of the five metacharacters `| ( ) * +` lexes as Char(b). The
// lexer cannot fail — it is total over []byte.
type Lexer struct {
	src []byte
	pos int
}

// New creates a Lexer over pattern.
func New(pattern string) *Lexer {
	return &Lexer{src: []byte(pattern)}
}

// Next returns the next token and advances the cursor. Once the input is
// exhausted, Next returns End on every subsequent call.
func (l *Lexer) Next() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: End}
	}

	c := l.src[l.pos]
	l.pos++

	switch c {
	case '|':
		return Token{Kind: Union}
	case '(':
		return Token{Kind: LPar}
	case ')':
		return Token{Kind: RPar}
	case '*':
		return Token{Kind: Star}
	case '+':
		return Token{Kind: Plus}
	default:
		return Token{Kind: Char, Value: c}
	}
}

// Pos returns the current byte offset of the cursor, mainly useful for
// error messages that want to point at where a problem token came from.
func (l *Lexer) Pos() int {
	return l.pos
}
