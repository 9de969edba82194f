package temporal

import "time"

// MondayFirstDayNames is the storage order of the weekly schedule.
var MondayFirstDayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SundayFirstDayNames follows time.Weekday numbering (Sunday=0).
var SundayFirstDayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// MondayIndex converts a Sunday-first weekday to its Monday-first index.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// IndexFrom returns the position of d in a week starting on start.
// IndexFrom(time.Monday, d) equals MondayIndex(d).
func IndexFrom(start, d time.Weekday) int {
	return ((int(d)-int(start))%7 + 7) % 7
}

// DayName resolves now to its weekday name.
func DayName(now time.Time) string {
	return MondayFirstDayNames[MondayIndex(now.Weekday())]
}

// WeekOrder lists the seven day names beginning with start.
func WeekOrder(start time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = SundayFirstDayNames[(int(start)+i)%7]
	}
	return out
}

// WeekdayOf returns the time.Weekday for a day name, or false.
func WeekdayOf(name string) (time.Weekday, bool) {
	for i, n := range SundayFirstDayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// IsToday reports whether name is the weekday of now.
func IsToday(name string, now time.Time) bool {
	return name == DayName(now)
}
