package model

import (
	"encoding/json"
	"strings"

	"github.com/manav03panchal/studinest/internal/errors"
)

// Priority ranks an assignment.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// priorityAliases maps lowercase labels, including the Indonesian labels
// used by older data, to a Priority.
var priorityAliases = map[string]Priority{
	"low":    PriorityLow,
	"rendah": PriorityLow,
	"medium": PriorityMedium,
	"sedang": PriorityMedium,
	"high":   PriorityHigh,
	"tinggi": PriorityHigh,
}

// Priorities returns the valid priorities, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority parses a priority label case-insensitively.
func ParsePriority(s string) (Priority, error) {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return "", errors.NewUserErrorWithField("priority", s,
		"Invalid priority",
		"Use Low, Medium, or High").WithCause(errors.ErrInvalidPriority)
}

// Rank orders priorities; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// UnmarshalJSON normalizes known aliases and keeps unknown labels verbatim.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if known, ok := priorityAliases[strings.ToLower(s)]; ok {
		*p = known
		return nil
	}
	*p = Priority(s)
	return nil
}
