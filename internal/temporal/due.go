package temporal

import (
	"fmt"
	"math"
	"time"

	"github.com/manav03panchal/studinest/internal/model"
)

// Day is the length used for due date arithmetic.
const Day = 24 * time.Hour

// DueKind buckets a due date relative to now.
type DueKind int

const (
	DueUnknown DueKind = iota
	DueOverdue
	DueToday
	DueTomorrow
	DueLater
)

// DueStatus is the classification of one due date.
type DueStatus struct {
	Kind DueKind
	Days int
}

// DaysUntil returns ceil((due-now)/24h). The difference is taken between
// full timestamps, not calendar days, so anything due within the last
// 24 hours still reads as 0.
func DaysUntil(due, now time.Time) int {
	days := math.Ceil(float64(due.Sub(now)) / float64(Day))
	// math.Ceil keeps the sign of small negatives
	if days == 0 {
		return 0
	}
	return int(days)
}

// ClassifyDue buckets due relative to now.
func ClassifyDue(due, now time.Time) DueStatus {
	days := DaysUntil(due, now)
	switch {
	case days < 0:
		return DueStatus{Kind: DueOverdue, Days: days}
	case days == 0:
		return DueStatus{Kind: DueToday, Days: 0}
	case days == 1:
		return DueStatus{Kind: DueTomorrow, Days: 1}
	default:
		return DueStatus{Kind: DueLater, Days: days}
	}
}

// ClassifyDate is ClassifyDue for a stored date. A date that never parsed
// is DueUnknown.
func ClassifyDate(due model.Date, now time.Time) DueStatus {
	if !due.Valid() {
		return DueStatus{Kind: DueUnknown}
	}
	return ClassifyDue(due.Time, now)
}

// String returns the display label.
func (s DueStatus) String() string {
	switch s.Kind {
	case DueOverdue:
		return "Overdue"
	case DueToday:
		return "Due today"
	case DueTomorrow:
		return "Due tomorrow"
	case DueLater:
		return fmt.Sprintf("Due in %d days", s.Days)
	default:
		return "No due date"
	}
}

// Urgent reports whether the status calls for attention.
func (s DueStatus) Urgent() bool {
	return s.Kind == DueOverdue || s.Kind == DueToday
}

// MarshalText encodes the display label.
func (s DueStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
