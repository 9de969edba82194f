package runtime

import (
	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/storage"
)

// quotaSuggestion is shown when a write failed for lack of space.
const quotaSuggestion = "Free up disk space and try again. Changes made in this session were kept in memory only."

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if storage.IsQuotaError(err) {
		return quotaSuggestion
	}
	return errors.GetSuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// WriteWarning summarizes failed writes for display after a command,
// or returns "" when everything persisted.
func WriteWarning(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	msg := "some changes could not be saved: " + errs[0].Error()
	if len(errs) > 1 {
		msg += " (and more)"
	}
	if suggestion := GetSuggestion(errs[0]); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
