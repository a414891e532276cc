package store

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when a password sign-in is refused.
// Callers must surface a fixed generic message, never the store detail.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoSession is returned when an operation requires an authenticated
// session and none is active.
var ErrNoSession = errors.New("no active session")

// RejectionError is any mutation the store refuses, including illegal
// booking status transitions. Network failures are wrapped the same way;
// callers do not distinguish the two.
type RejectionError struct {
	Op     string
	Reason string
	Err    error
}

func (e *RejectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s rejected: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Reason)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// NewRejection builds a RejectionError for the given operation.
func NewRejection(op, reason string, err error) error {
	return &RejectionError{Op: op, Reason: reason, Err: err}
}
