package parser

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studinest/internal/errors"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"monday", time.Monday},
		{"MONDAY", time.Monday},
		{"Tue", time.Tuesday},
		{"thurs", time.Thursday},
		{" sunday ", time.Sunday},
		{"senin", time.Monday},
		{"Jumat", time.Friday},
		{"minggu", time.Sunday},
		{"today", time.Wednesday},
		{"", time.Wednesday},
		{"tomorrow", time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input, reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown_day", func(t *testing.T) {
		_, err := ParseWeekday("funday", reference)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidWeekday))
	})
}

func TestNormalizeDayName(t *testing.T) {
	assert.Equal(t, "Monday", NormalizeDayName("MONDAY"))
	assert.Equal(t, "Friday", NormalizeDayName("  friday"))
}
