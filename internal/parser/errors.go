package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/studinest/internal/errors"
)

// InputParseError represents an input parsing error with helpful suggestions.
type InputParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Sentinel   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap exposes the sentinel so callers can match with errors.Is.
func (e *InputParseError) Unwrap() error {
	return e.Sentinel
}

// FormatWithExamples returns the error message with example suggestions.
func (e *InputParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// DueDateExamples provides example due date formats.
var DueDateExamples = []string{
	"2024-06-01",
	"+3d",
	"+2w",
	"tomorrow",
	"next friday",
	"June 1 2024",
}

// WeekdayExamples provides example weekday names.
var WeekdayExamples = []string{
	"monday",
	"Tue",
	"today",
	"senin",
}

// NewDueDateError creates a due date parse error with standard examples.
func NewDueDateError(input string) *InputParseError {
	return &InputParseError{
		Input:      input,
		Field:      "due date",
		Message:    "could not parse date",
		Examples:   DueDateExamples,
		Suggestion: "Due dates can be ISO dates (2024-06-01), offsets (+3d) or phrases (next friday).",
		Sentinel:   errors.ErrInvalidDate,
	}
}

// NewWeekdayError creates a weekday parse error with standard examples.
func NewWeekdayError(input string) *InputParseError {
	return &InputParseError{
		Input:      input,
		Field:      "weekday",
		Message:    "unknown day",
		Examples:   WeekdayExamples,
		Suggestion: "Use a day name like 'monday' or an abbreviation like 'mon'.",
		Sentinel:   errors.ErrInvalidWeekday,
	}
}

// ToUserError converts an InputParseError to a UserError for consistent handling.
func (e *InputParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion).WithCause(e.Sentinel)
}
