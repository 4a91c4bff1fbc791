// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrLengthExceeded  = fmt.Errorf("requested length exceeds max size")
	ErrAllocFailed     = fmt.Errorf("storage allocation failed")
	ErrOutOfRange      = fmt.Errorf("position out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeLengthExceeded
	ErrCodeAllocFailed
	ErrCodeOutOfRange
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is reports whether this error matches one of the package sentinels,
// so call sites can use errors.Is against structured errors.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Code == ErrCodeInvalidArgument
	case ErrLengthExceeded:
		return e.Code == ErrCodeLengthExceeded
	case ErrAllocFailed:
		return e.Code == ErrCodeAllocFailed
	case ErrOutOfRange:
		return e.Code == ErrCodeOutOfRange
	}
	return false
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
