package validate

import (
	"strings"
	"unicode"
)

// SanitizeText trims whitespace and removes control characters from
// single-line input such as titles and task text.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeNote removes control characters from multi-line input, keeping
// newlines and tabs.
func SanitizeNote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
