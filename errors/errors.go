// Package errors provides coded errors for input validation and configuration.
//
// Error codes are machine-readable and stable:
//   - DEGENERATE_ANGLE: a shadow angle the estimator cannot divide by
//   - OUT_OF_RANGE_TIME: a time of day outside [0, 100]
//   - INVALID_DISTANCE: a negative or infinite surface distance
//   - INVALID_INPUT: any other malformed input
//   - INVALID_CONFIG: a configuration file that cannot be used
//
// Usage:
//
//	err := errors.New(errors.ErrCodeDegenerateAngle, "shadow angle %v", a)
//	if errors.Is(err, errors.ErrCodeDegenerateAngle) {
//	    // substitute the default angle
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeDegenerateAngle Code = "DEGENERATE_ANGLE"
	ErrCodeOutOfRangeTime  Code = "OUT_OF_RANGE_TIME"
	ErrCodeInvalidDistance Code = "INVALID_DISTANCE"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
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

// GetCode extracts the error code from an error, or "" if it has none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values,
// and err.Error() otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
