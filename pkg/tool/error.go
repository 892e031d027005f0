package tool

import (
	"fmt"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// upstreamError is a failure reported by, or while reaching, an upstream service
type upstreamError struct {
	action  string
	subject string
	err     error
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Fail wraps an upstream error as "Error <action> for <subject>: <err>".
// The result matches weatherstock.ErrUpstream and the wrapped error with errors.Is.
func Fail(action, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &upstreamError{action: action, subject: subject, err: err}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *upstreamError) Error() string {
	return fmt.Sprintf("Error %s for %s: %v", e.action, e.subject, e.err)
}

func (e *upstreamError) Unwrap() []error {
	return []error{weatherstock.ErrUpstream, e.err}
}
