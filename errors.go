package regrex

import (
	"errors"
	"fmt"

	"github.com/coregx/regrex/internal/ast"
	"github.com/coregx/regrex/internal/dfa"
	"github.com/coregx/regrex/internal/nfa"
)

// ErrCapacityExceeded is wrapped by CapacityError and matches errors.Is
// checks against either an NFA or a DFA arena overflow.
var ErrCapacityExceeded = errors.New("regrex: state capacity exceeded")

// SyntaxError reports a malformed pattern, with the byte offset at which
// the parser gave up.
type SyntaxError struct {
	Pos     int
	Message string
	err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regrex: syntax error at byte %d: %s", e.Pos, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.err }

// CapacityError reports that compiling a pattern required more NFA or DFA
// states than the configured limit allows.
type CapacityError struct {
	Stage string // "nfa" or "dfa"
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("regrex: %s capacity exceeded: more than %d states required", e.Stage, e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ErrOutOfMemory is wrapped by OutOfMemoryError.
var ErrOutOfMemory = errors.New("regrex: out of memory")

// OutOfMemoryError reports that the host runtime could not satisfy an
// allocation made while compiling or running a pattern.
//
// This is distinct from CapacityError: CapacityError is a normal, expected
// outcome of a pattern outgrowing its configured arena limit, while
// OutOfMemoryError reports the underlying host actually running out of
// memory. Go has no recoverable allocation-failure signal — the runtime
// panics (and the process typically dies) rather than returning an error
// any caller could inspect — so nothing in this package ever constructs
// one. The type is kept only so the public error taxonomy stays
// complete: the CLI's exit code 2 covers "capacity exceeded or
// out-of-memory" as one outcome, and external callers embedding this
// package may still want a named type to match against with errors.As
// even though regrex itself cannot raise it.
type OutOfMemoryError struct {
	Message string
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("regrex: out of memory: %s", e.Message)
}

func (e *OutOfMemoryError) Unwrap() error { return ErrOutOfMemory }

// wrapCompileError translates an internal package error into the public
// error taxonomy (SyntaxError, CapacityError), preserving position and
// limit information for callers that inspect it with errors.As.
func wrapCompileError(err error) error {
	var se *ast.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Pos: se.Pos, Message: se.Message, err: err}
	}

	var nce *nfa.CapacityError
	if errors.As(err, &nce) {
		return &CapacityError{Stage: "nfa", Limit: nce.Limit}
	}

	var dce *dfa.CapacityError
	if errors.As(err, &dce) {
		return &CapacityError{Stage: "dfa", Limit: dce.Limit}
	}

	return err
}
