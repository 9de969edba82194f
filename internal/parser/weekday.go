package parser

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// weekdayAliases maps lowercase names, abbreviations and the Indonesian
// day names used by the seed schedule to a weekday.
var weekdayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "minggu": time.Sunday,
	"mon": time.Monday, "senin": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "selasa": time.Tuesday,
	"wed": time.Wednesday, "rabu": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "kamis": time.Thursday,
	"fri": time.Friday, "jumat": time.Friday,
	"sat": time.Saturday, "sabtu": time.Saturday,
}

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdayAliases[strings.ToLower(d.String())] = d
	}
}

// ParseWeekday resolves a weekday name or abbreviation in any case.
// "today" and "tomorrow" resolve relative to now.
func ParseWeekday(input string, now time.Time) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	switch key {
	case "today", "":
		return now.Weekday(), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Weekday(), nil
	}

	if d, ok := weekdayAliases[key]; ok {
		return d, nil
	}
	return 0, NewWeekdayError(input)
}

// NormalizeDayName title-cases a day name so it matches the schedule keys,
// e.g. "MONDAY" becomes "Monday".
func NormalizeDayName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}
