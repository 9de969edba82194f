package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// isoLayouts are tried before natural language parsing, in order.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2",
}

// relativeRegex matches relative day expressions like "+3d" or "+2w".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([dw])$`)

// isoPrefixRegex matches input that starts like an ISO-8601 date. Such
// input is never handed to natural language parsing, which would clamp an
// impossible day such as 2024-02-30 onto a real one.
var isoPrefixRegex = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)

// ParseISODate accepts only the ISO-8601 layouts. Out-of-range fields are
// rejected, never normalized. Layouts without a zone are read in loc.
func ParseISODate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 date: %q", input)
}

// ParseDate parses a typed calendar date. ISO-8601 forms are tried first;
// anything else goes through go-dateparser relative to now. Layouts without
// a zone are read in now's location.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	if t, err := ParseISODate(input, now.Location()); err == nil {
		return t, nil
	}
	if isoPrefixRegex.MatchString(input) {
		return time.Time{}, fmt.Errorf("invalid date %q", input)
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, fmt.Errorf("could not parse date %q", input)
	}
	return result.Time, nil
}

// ParseDueDate parses a due date typed by the user. Besides everything
// ParseDate accepts it understands "+Nd" and "+Nw" offsets from today.
// The result is truncated to local midnight, the way a date picker
// produces dates.
func ParseDueDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, NewDueDateError(input)
	}

	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		n, _ := strconv.Atoi(match[1])
		if match[2] == "w" {
			n *= 7
		}
		return StartOfDay(now).AddDate(0, 0, n), nil
	}

	t, err := ParseDate(input, now)
	if err != nil {
		return time.Time{}, NewDueDateError(input)
	}
	return StartOfDay(t), nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
