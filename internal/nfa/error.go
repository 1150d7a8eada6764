package nfa

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is wrapped by CapacityError when the state arena runs
// out of room during construction.
var ErrCapacityExceeded = errors.New("NFA state capacity exceeded")

// CapacityError reports that the NFA arena could not allocate another
// state because it already holds Limit states.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("nfa: capacity exceeded: more than %d states required", e.Limit)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
