package ast

import (
	"errors"
	"fmt"

	"github.com/coregx/regrex/internal/token"
)

// Sentinel errors a caller can match with errors.Is against a returned
// *SyntaxError.
var (
	// ErrUnexpectedToken covers stray operators and other malformed
	// primaries.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnmatchedParen covers a '(' with no matching ')'.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")
	// ErrTrailingInput covers input remaining after a complete regexp.
	ErrTrailingInput = errors.New("trailing input")
)

// SyntaxError reports a malformed pattern, including the byte offset the
// lexer had reached when the problem was discovered.
type SyntaxError struct {
	Pos     int
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

// Unwrap exposes the underlying sentinel so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parser is a one-token-lookahead recursive-descent parser over the
// grammar in the package doc comment. Entry point is Parse.
type Parser struct {
	lex *token.Lexer
	cur token.Token
}

// Parse parses pattern and returns its syntax tree, or a *SyntaxError if
// the pattern is malformed.
func Parse(pattern string) (*Node, error) {
	p := &Parser{lex: token.New(pattern)}
	p.advance()

	tree, err := p.regexp()
	if err != nil {
		return nil, err
	}

	if p.cur.Kind != token.End {
		return nil, p.errorf(ErrTrailingInput, "trailing input")
	}
	return tree, nil
}

func (p *Parser) advance() {
	p.cur = p.lex.Next()
}

func (p *Parser) errorf(sentinel error, format string, args ...any) error {
	return &SyntaxError{
		Pos:     p.lex.Pos(),
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// regexp := term ( '|' term )*
func (p *Parser) regexp() (*Node, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Union {
		p.advance()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		x = Union(x, rhs)
	}
	return x, nil
}

// term := (factor)*  — an empty term is represented by Empty and occurs
// when the lookahead is UNION, RPAR, or END: that is how `(a|)` and `()`
// and the empty pattern all parse.
func (p *Parser) term() (*Node, error) {
	if p.atTermEnd() {
		return Empty(), nil
	}

	x, err := p.factor()
	if err != nil {
		return nil, err
	}
	for !p.atTermEnd() {
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		x = Concat(x, rhs)
	}
	return x, nil
}

func (p *Parser) atTermEnd() bool {
	switch p.cur.Kind {
	case token.Union, token.RPar, token.End:
		return true
	default:
		return false
	}
}

// factor := primary ( '*' | '+' )?
//
// Exactly one postfix suffix is consumed. "a**" is not (a*)*: the second
// '*' is left as the lookahead for the enclosing term/regexp, which will
// reject it as a malformed primary.
func (p *Parser) factor() (*Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.Star:
		p.advance()
		x = Closure(x)
	case token.Plus:
		p.advance()
		// a+ == Concat(X, Closure(X)); the same subtree is referenced
		// from both branches. The NFA builder only ever reads the
		// tree, so sharing it here is safe (see ast.Node doc comment).
		x = Concat(x, Closure(x))
	}
	return x, nil
}

// primary := CHAR | '(' regexp ')'
func (p *Parser) primary() (*Node, error) {
	switch p.cur.Kind {
	case token.Char:
		b := p.cur.Value
		p.advance()
		return Char(b), nil
	case token.LPar:
		p.advance()
		x, err := p.regexp()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != token.RPar {
			return nil, p.errorf(ErrUnmatchedParen, "close paren expected")
		}
		p.advance()
		return x, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken, "character or '(' expected")
	}
}
