package dfa

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is wrapped by CapacityError when the DFA arena runs
// out of room during subset construction.
var ErrCapacityExceeded = errors.New("DFA state capacity exceeded")

// CapacityError reports that the DFA arena could not register another
// state because it already holds Limit states.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dfa: capacity exceeded: more than %d states required", e.Limit)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
