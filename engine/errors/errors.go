// Package errors provides coded errors for the grove UI engine.
//
// Layout code reports invalid placement parameters with a machine-readable
// [Code] so callers (scene loader, CLI) can tell an invalid anchor from an
// invalid scene document without parsing messages.
//
//	err := errors.New(errors.ErrCodeInvalidAnchor, "anchor %q is not valid on the x axis", a)
//	if errors.Is(err, errors.ErrCodeInvalidAnchor) {
//	    // reject the placement
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Placement parameters
	ErrCodeInvalidAnchor  Code = "INVALID_ANCHOR"
	ErrCodeInvalidAlign   Code = "INVALID_ALIGN"
	ErrCodeInvalidSpacing Code = "INVALID_SPACING"

	// Scene documents
	ErrCodeInvalidScene Code = "INVALID_SCENE"
	ErrCodeNotFound     Code = "NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
