// Package weatherstock serves weather and stock market tools, and prompts
// which chain them, to language model hosts over MCP and HTTP.
package weatherstock

import (
	"errors"
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrUpstream
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrUpstream:
		return "upstream failure"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Code returns the error code wrapped by err, ErrSuccess when err is nil,
// or ErrInternalServerError when err carries no code
func Code(err error) Err {
	var code Err
	if err == nil {
		return ErrSuccess
	} else if errors.As(err, &code) {
		return code
	}
	return ErrInternalServerError
}

// Message returns the text of err without the leading error code
func Message(err error) string {
	var code Err
	if errors.As(err, &code) {
		return strings.TrimPrefix(err.Error(), code.Error()+": ")
	}
	return err.Error()
}
