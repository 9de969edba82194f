// Package validate provides input validation helpers for the Studinest CLI.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/studinest/internal/errors"
)

const (
	// MaxTitleLength is the maximum length for assignment titles, course names and task text.
	MaxTitleLength = 200
	// MaxNoteLength is the maximum length for notes.
	MaxNoteLength = 4096
	// MaxProgress is the upper bound of assignment progress.
	MaxProgress = 100
)

// clockRegex matches 24-hour "H:MM" or "HH:MM" times of day.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Title validates a required, bounded single-line text field.
func Title(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	if utf8.RuneCountInString(value) > MaxTitleLength {
		return errors.NewUserErrorWithField(field, value,
			field+" too long",
			fmt.Sprintf("Keep %s to %d characters or fewer", field, MaxTitleLength))
	}
	return nil
}

// Note validates a note/description.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// Progress validates that assignment progress is a percentage.
func Progress(progress int) error {
	return InRange("progress", progress, 0, MaxProgress)
}

// Credits validates that course credits are not negative.
func Credits(credits int) error {
	if credits < 0 {
		return errors.NewUserErrorWithField("credits", fmt.Sprint(credits),
			"Credits cannot be negative",
			"Use 0 or a positive number of credits")
	}
	return nil
}

// Clock validates a "HH:MM" time of day.
func Clock(field, value string) error {
	if !clockRegex.MatchString(value) {
		return errors.NewUserErrorWithField(field, value,
			"Invalid time of day",
			"Use 24-hour HH:MM format, e.g. '08:00' or '14:30'").WithCause(errors.ErrInvalidClock)
	}
	return nil
}

// InRange validates that an integer is within [min, max].
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, fmt.Sprint(value),
			field+" out of range",
			fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return nil
}
