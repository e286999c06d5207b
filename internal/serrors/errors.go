// Package serrors provides custom error types for cloudsh.
// These error types let the completion engine distinguish expected,
// recoverable conditions (tree misses, provider failures) from genuine
// programming errors.
package serrors

import (
	"errors"
	"fmt"
)

// ErrUnsupported signals that a value provider does not implement the
// attempted calling convention. Resolution falls through to the next
// convention; it is never surfaced to the user.
var ErrUnsupported = errors.New("calling convention not supported")

// ShellError is the base interface for all cloudsh errors
type ShellError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all cloudsh errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// NotFoundError represents a failed command-tree lookup. Callers treat
// it as "this input no longer matches any known command", not a fault.
type NotFoundError struct {
	baseError
	Label string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(label string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Label: label,
	}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// TableError represents errors loading or parsing a command table
type TableError struct {
	baseError
	Path string
}

// NewTableError creates a new table error
func NewTableError(path string, message string, cause error) *TableError {
	return &TableError{
		baseError: baseError{
			code:    "TABLE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ProviderError represents a failure from a dynamic value source
// (network, authentication, anything). The engine swallows it and
// degrades to zero candidates from that source.
type ProviderError struct {
	baseError
	Parameter string
}

// NewProviderError creates a new provider error
func NewProviderError(parameter string, message string, cause error) *ProviderError {
	return &ProviderError{
		baseError: baseError{
			code:    "PROVIDER_ERROR",
			message: message,
			cause:   cause,
		},
		Parameter: parameter,
	}
}

// ValidationError represents errors during command-table validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}
