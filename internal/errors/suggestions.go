package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrAssignmentNotFound: "Use 'studinest assignment list' to see assignment IDs.",
	ErrCourseNotFound:     "Use 'studinest course list' to see course IDs.",
	ErrTaskNotFound:       "Use 'studinest remind list' to see daily task IDs.",
	ErrInvalidDate:        "Try formats like '2026-01-15', 'next friday', or 'in 3 days'.",
	ErrInvalidClock:       "Use 24-hour HH:MM format, e.g. '08:00' or '14:30'.",
	ErrInvalidTheme:       "Use 'light', 'dark', or 'toggle'.",
	ErrInvalidPage:        "Use one of: dashboard, assignments, courses, schedule, reminders.",
	ErrInvalidPriority:    "Use Low, Medium, or High.",
	ErrInvalidWeekday:     "Use a weekday name such as 'monday' or 'Sunday'.",
	ErrStorageCorrupted:   "The stored value was replaced by its default; re-enter the data if needed.",
	ErrStorageUnavailable: "Check permissions on the data directory or set STUDINEST_DATABASE.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for sentinel, suggestion := range Suggestions {
		if errors.Is(err, sentinel) {
			return suggestion
		}
	}
	return ""
}
