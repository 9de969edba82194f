package temporal

import (
	"strconv"
	"strings"
	"time"

	"github.com/manav03panchal/studinest/internal/model"
)

// ParseClock reads an "HH:MM" time of day. Single-digit hours are accepted.
func ParseClock(s string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 || len(m) != 2 {
		return 0, 0, false
	}
	return hour, minute, true
}

// At places a clock time on now's calendar day in now's location.
func At(now time.Time, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

// Window returns the start and end of entry on now's day.
func Window(entry model.ScheduleEntry, now time.Time) (start, end time.Time, ok bool) {
	sh, sm, ok1 := ParseClock(entry.Start)
	eh, em, ok2 := ParseClock(entry.End)
	if !ok1 || !ok2 {
		return time.Time{}, time.Time{}, false
	}
	return At(now, sh, sm), At(now, eh, em), true
}

// IsActive reports whether now falls inside entry on the current day.
// Both bounds are inclusive. An entry ending before it starts (crossing
// midnight) is evaluated within the one day and is never active.
// Malformed times are never active.
func IsActive(entry model.ScheduleEntry, now time.Time) bool {
	start, end, ok := Window(entry, now)
	if !ok {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// Active returns the index of the first active entry, or -1.
func Active(entries []model.ScheduleEntry, now time.Time) int {
	for i, e := range entries {
		if IsActive(e, now) {
			return i
		}
	}
	return -1
}

// Next returns the index of the first entry starting after now, or -1.
func Next(entries []model.ScheduleEntry, now time.Time) int {
	for i, e := range entries {
		start, _, ok := Window(e, now)
		if ok && start.After(now) {
			return i
		}
	}
	return -1
}
