package model

import (
	"strings"

	"github.com/manav03panchal/studinest/internal/errors"
)

// Theme is the color theme of the interface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", errors.NewUserErrorWithField("theme", s,
		"Invalid theme",
		"Use 'light' or 'dark'").WithCause(errors.ErrInvalidTheme)
}

// Page identifies one of the interface pages.
type Page string

const (
	PageDashboard   Page = "dashboard"
	PageAssignments Page = "assignments"
	PageCourses     Page = "courses"
	PageSchedule    Page = "schedule"
	PageReminders   Page = "reminders"
)

// Pages returns all pages in navigation order.
func Pages() []Page {
	return []Page{PageDashboard, PageAssignments, PageCourses, PageSchedule, PageReminders}
}

// ParsePage validates a page identifier.
func ParsePage(s string) (Page, error) {
	candidate := Page(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Pages() {
		if p == candidate {
			return p, nil
		}
	}
	return "", errors.NewUserErrorWithField("page", s,
		"Invalid page",
		"Use one of: dashboard, assignments, courses, schedule, reminders").WithCause(errors.ErrInvalidPage)
}
