// Package errors provides structured error types for hostctl.
package errors

import (
	"fmt"
)

// ErrorCode identifies specific error conditions
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeParse      ErrorCode = "PARSE_ERROR"
	ErrCodeNotFound   ErrorCode = "BACKEND_NOT_FOUND"
	ErrCodeAmbiguous  ErrorCode = "AMBIGUOUS_BACKEND"
)

// Error is the base error type for hostctl
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Details map[string]interface{}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Wrap creates a new error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Details: make(map[string]interface{}),
	}
}

// WithDetail adds a single detail to an error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.Details[key] = value
	return e
}

// ValidationError creates a validation error
func ValidationError(message string, details map[string]interface{}) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: message,
		Details: details,
	}
}

// ParseError creates a parse error
func ParseError(filePath string, err error) *Error {
	return &Error{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("failed to parse %s", filePath),
		Cause:   err,
		Details: map[string]interface{}{
			"file": filePath,
		},
	}
}

// BackendNotFound creates an error for a rewrite referencing a backend that
// matches nothing in the deployment plan or the live snapshot.
func BackendNotFound(name string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("unable to find a valid endpoint for function %q", name),
		Details: map[string]interface{}{
			"function": name,
		},
	}
}

// AmbiguousBackend creates an error for a reference that matched two or more
// backends with no region to disambiguate them.
func AmbiguousBackend(name string) *Error {
	return &Error{
		Code:    ErrCodeAmbiguous,
		Message: fmt.Sprintf("more than one backend found for function name %q; specify a region to disambiguate", name),
		Details: map[string]interface{}{
			"function": name,
		},
	}
}

// Is checks if the error matches the given code
func Is(err error, code ErrorCode) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}
