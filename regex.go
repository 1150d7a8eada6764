// Package regrex is a small regular expression engine implementing literal
// bytes, concatenation, alternation (|), grouping (()), and the Kleene
// operators * and +.
//
// Compilation runs a fixed pipeline: a hand-written lexer and
// recursive-descent parser build a syntax tree, a Thompson-construction
// builder turns the tree into an NFA, and subset construction determinizes
// the NFA into a DFA. Matching walks the DFA to find the leftmost, longest
// match starting no later than the first position that admits one.
//
// Example:
//
//	re, err := regrex.Compile("(a|bc)*d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if s, ok := re.Find("xxbcaad"); ok {
//	    fmt.Println(s) // "bcaad"
//	}
package regrex

import (
	"github.com/coregx/regrex/internal/ast"
	"github.com/coregx/regrex/internal/dfa"
	"github.com/coregx/regrex/internal/nfa"
	"github.com/coregx/regrex/internal/scanner"
)

// Regex is a compiled pattern. It holds no mutable state reachable after
// Compile returns, so a *Regex is safe to share and call concurrently from
// multiple goroutines.
type Regex struct {
	pattern string
	dfa     *dfa.DFA
}

// Compile parses and compiles pattern using DefaultConfig's limits.
//
// Returns a *SyntaxError if pattern is malformed, or a *CapacityError if
// compiling it would require more NFA or DFA states than the default
// limits allow.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It is
// intended for patterns that are fixed at program startup and known valid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regrex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig is like Compile but applies cfg's resource limits
// instead of the defaults.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) > cfg.MaxPatternLen {
		return nil, &SyntaxError{
			Pos:     cfg.MaxPatternLen,
			Message: "pattern exceeds configured maximum length",
		}
	}

	tree, err := ast.Parse(pattern)
	if err != nil {
		return nil, wrapCompileError(err)
	}

	n, err := nfa.NewBuilder(cfg.NFAStateLimit).Build(tree)
	if err != nil {
		return nil, wrapCompileError(err)
	}

	d, err := dfa.NewBuilder(n, cfg.DFAStateLimit).Build()
	if err != nil {
		return nil, wrapCompileError(err)
	}

	return &Regex{pattern: pattern, dfa: d}, nil
}

// Search finds the leftmost non-empty match in input and returns its span
// as a half-open byte range, input[start:end]. Search never fails: ok is
// false whenever no start offset admits a non-empty match, including when
// input is empty.
func (r *Regex) Search(input string) (start, end int, ok bool) {
	return scanner.Search(r.dfa, input)
}

// Find returns the leftmost matching substring of input and true, or ""
// and false if there is no match.
func (r *Regex) Find(input string) (string, bool) {
	start, end, ok := r.Search(input)
	if !ok {
		return "", false
	}
	return input[start:end], true
}

// String returns the source pattern r was compiled from.
func (r *Regex) String() string {
	return r.pattern
}
