// Package errors provides consistent error types for the Studinest CLI.
// It defines two main categories: UserError (fixable by user) and SystemError
// (storage or environment issues the user cannot directly fix).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrTaskNotFound       = errors.New("daily task not found")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidClock       = errors.New("invalid time of day")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrInvalidPage        = errors.New("invalid page")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrStorageCorrupted   = errors.New("stored value is corrupted")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel for errors.Is matching (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// WithCause attaches a sentinel so callers can match the error with errors.Is.
func (e *UserError) WithCause(cause error) *UserError {
	e.Cause = cause
	return e
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: storage medium unavailable, write rejected.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is is re-exported from the standard errors package for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is re-exported from the standard errors package for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is re-exported from the standard errors package for convenience.
func New(text string) error {
	return errors.New(text)
}
