package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studinest/internal/errors"
)

func TestInputParseErrorError(t *testing.T) {
	err := &InputParseError{
		Input:   "someday",
		Field:   "due date",
		Message: "could not parse date",
	}
	result := err.Error()
	assert.Contains(t, result, "invalid due date")
	assert.Contains(t, result, "someday")
	assert.Contains(t, result, "could not parse date")
}

func TestFormatWithExamples(t *testing.T) {
	t.Run("with_examples", func(t *testing.T) {
		err := NewWeekdayError("funday")
		result := err.FormatWithExamples()
		assert.Contains(t, result, "invalid weekday")
		assert.Contains(t, result, "Valid examples:")
		assert.Contains(t, result, "  - monday")
		assert.Contains(t, result, err.Suggestion)
	})

	t.Run("without_examples", func(t *testing.T) {
		err := &InputParseError{Input: "x", Field: "day", Message: "bad"}
		assert.Equal(t, err.Error(), err.FormatWithExamples())
	})
}

func TestInputParseErrorSentinels(t *testing.T) {
	assert.True(t, stderrors.Is(NewDueDateError("x"), errors.ErrInvalidDate))
	assert.True(t, stderrors.Is(NewWeekdayError("x"), errors.ErrInvalidWeekday))
}

func TestToUserError(t *testing.T) {
	t.Run("keeps_suggestion_and_sentinel", func(t *testing.T) {
		userErr := NewDueDateError("someday").ToUserError()
		require.NotNil(t, userErr)
		assert.Equal(t, "due date", userErr.Field)
		assert.Equal(t, "someday", userErr.Value)
		assert.Contains(t, userErr.Suggestion, "+3d")
		assert.True(t, stderrors.Is(userErr, errors.ErrInvalidDate))
	})

	t.Run("builds_suggestion_from_examples", func(t *testing.T) {
		err := &InputParseError{
			Input:    "x",
			Field:    "weekday",
			Message:  "unknown day",
			Examples: []string{"monday", "tue", "today", "senin"},
		}
		userErr := err.ToUserError()
		assert.Equal(t, "Try: monday, tue, today", userErr.Suggestion)
	})
}
