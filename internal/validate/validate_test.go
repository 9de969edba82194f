package validate

import (
	"strings"
	"testing"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "Chemistry lab report", false},
		{"unicode", "Analisis Puisi bab 2 ✍", false},
		{"max_length", strings.Repeat("a", MaxTitleLength), false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too_long", strings.Repeat("a", MaxTitleLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Title("title", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsUserError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNote(t *testing.T) {
	assert.NoError(t, Note(""))
	assert.NoError(t, Note(strings.Repeat("n", MaxNoteLength)))
	assert.Error(t, Note(strings.Repeat("n", MaxNoteLength+1)))
}

func TestProgress(t *testing.T) {
	assert.NoError(t, Progress(0))
	assert.NoError(t, Progress(100))
	assert.Error(t, Progress(-1))

	err := Progress(101)
	assert.Error(t, err)
	assert.Equal(t, "progress out of range: '101'", err.Error())
}

func TestCredits(t *testing.T) {
	assert.NoError(t, Credits(0))
	assert.NoError(t, Credits(4))
	assert.Error(t, Credits(-2))
}

func TestClock(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"08:00", false},
		{"8:00", false},
		{"23:59", false},
		{"00:00", false},
		{"24:00", true},
		{"12:60", true},
		{"1200", true},
		{"", true},
		{"ab:cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Clock("start", tt.value)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrInvalidClock))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Buy pens", SanitizeText("  Buy\x00 pens\t "))
	assert.Equal(t, "", SanitizeText("\x07"))
}

func TestSanitizeNote(t *testing.T) {
	assert.Equal(t, "line one\nline two", SanitizeNote(" line one\nline two\x1b "))
}
