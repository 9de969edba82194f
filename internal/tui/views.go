package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/temporal"
)

var pageLabels = map[model.Page]string{
	model.PageDashboard:   "Dashboard",
	model.PageAssignments: "Assignments",
	model.PageCourses:     "Courses",
	model.PageSchedule:    "Schedule",
	model.PageReminders:   "Reminder",
}

// View renders the dashboard.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{m.renderHeader(), m.renderNav()}

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, m.styles.Warning.Render(m.message))
	}

	switch m.page {
	case model.PageAssignments:
		sections = append(sections, m.renderAssignments())
	case model.PageCourses:
		sections = append(sections, m.renderCourses())
	case model.PageSchedule:
		sections = append(sections, m.renderSchedule())
	case model.PageReminders:
		sections = append(sections, m.renderReminders())
	default:
		sections = append(sections, m.renderDashboard())
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the header line.
func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("Studinest")
	now := m.styles.Subtitle.Render(m.now.Format("Mon Jan 2, 15:04"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", now) + "\n"
}

// renderNav renders the page tabs.
func (m *Model) renderNav() string {
	var items []string
	for i, p := range model.Pages() {
		label := fmt.Sprintf("%d %s", i+1, pageLabels[p])
		if p == m.page {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...) + "\n"
}

func (m *Model) boxWidth() int {
	if m.width > 8 {
		return m.width - 4
	}
	return m.width
}

func (m *Model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome back ✨"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Today's overview"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Box.Width(m.boxWidth()).Render(m.renderUpcoming()))
	b.WriteString("\n")
	b.WriteString(m.styles.TodayBox.Width(m.boxWidth()).Render(m.renderToday()))
	b.WriteString("\n")
	b.WriteString(m.styles.Box.Width(m.boxWidth()).Render(m.renderTaskList("Daily reminder")))
	return b.String()
}

func (m *Model) renderUpcoming() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Upcoming assignments"))
	b.WriteString("\n")

	upcoming := m.cfg.Assignments.Upcoming(m.cfg.UpcomingLimit)
	if len(upcoming) == 0 {
		b.WriteString(m.styles.Muted.Render("No upcoming assignments"))
		return b.String()
	}

	for _, a := range upcoming {
		status := temporal.ClassifyDate(a.DueDate, m.now)
		due := m.styles.Text.Render(status.String())
		if status.Urgent() {
			due = m.styles.Error.Render(status.String())
		}
		fmt.Fprintf(&b, "\n%s  %s  %s\n%s\n",
			m.styles.Text.Bold(true).Render(a.Title),
			due,
			m.styles.PriorityStyle(a.Priority).Render(string(a.Priority)),
			m.styles.Muted.Render(a.Course))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderToday() string {
	var b strings.Builder
	day := temporal.DayName(m.now)
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Schedule (%s)", day)))
	b.WriteString("\n")

	entries := m.cfg.Schedule.Day(day)
	if len(entries) == 0 {
		b.WriteString(m.styles.Muted.Render("No classes today. Free time!"))
		return b.String()
	}
	b.WriteString(m.renderEntries(entries, true))
	return b.String()
}

// renderEntries lists schedule entries; when today is set the active
// entries are highlighted.
func (m *Model) renderEntries(entries []model.ScheduleEntry, today bool) string {
	var lines []string
	for _, e := range entries {
		slot := output.FormatSlot(e)
		line := fmt.Sprintf("%s  %s  %s", slot, e.Course, e.Room)
		if today && temporal.IsActive(e, m.now) {
			lines = append(lines, m.styles.Cursor.Render("▶ "+line+"  now"))
			continue
		}
		lines = append(lines, m.styles.Text.Render("  "+slot)+"  "+
			m.styles.Text.Render(e.Course)+"  "+m.styles.Muted.Render(e.Room))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTaskList(title string) string {
	var b strings.Builder
	tasks := m.cfg.Tasks.List()
	b.WriteString(m.styles.Title.Render(title))
	if remaining := m.cfg.Tasks.Remaining(); len(tasks) > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d of %d left", remaining, len(tasks))))
	}
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("Your list is empty!"))
		return b.String()
	}

	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		check := "[ ]"
		text := m.styles.Text.Render(t.Text)
		if t.Completed {
			check = "[x]"
			text = m.styles.Done.Render(t.Text)
		}
		fmt.Fprintf(&b, "\n%s%s %s", cursor, check, text)
	}
	return b.String()
}

func (m *Model) renderAssignments() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Assignments"))
	b.WriteString("\n\n")

	items := m.cfg.Assignments.SortedByDue()
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("No assignments yet. Add one with 'studinest assignment add'."))
		return b.String()
	}

	for i, a := range items {
		var card strings.Builder
		status := temporal.ClassifyDate(a.DueDate, m.now)
		fmt.Fprintf(&card, "%s  %s\n",
			m.styles.Text.Bold(true).Render(a.Title),
			m.styles.PriorityStyle(a.Priority).Render(string(a.Priority)))
		fmt.Fprintf(&card, "%s  %s (%s)\n",
			m.styles.Muted.Render(a.Course),
			output.FormatDate(a.DueDate),
			status)
		fmt.Fprintf(&card, "%s %d%%", m.styles.ProgressBar(float64(a.Progress), 20), a.Progress)
		if i == m.cursor && a.Notes != "" {
			card.WriteString("\n\n" + m.styles.Note.Render(a.Notes))
		}

		style := m.styles.Box
		if i == m.cursor {
			style = m.styles.ActiveBox
		}
		b.WriteString(style.Width(m.boxWidth()).Render(card.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderCourses() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Courses"))

	courses := m.cfg.Courses.List()
	credits := 0
	for _, c := range courses {
		credits += c.Credits
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d credits total", credits)))
	b.WriteString("\n\n")

	if len(courses) == 0 {
		b.WriteString(m.styles.Muted.Render("No courses yet. Add one with 'studinest course add'."))
		return b.String()
	}

	for i, c := range courses {
		var card strings.Builder
		card.WriteString(m.styles.Text.Bold(true).Render(c.Name))
		if c.Code != "" {
			card.WriteString(m.styles.Muted.Render("  " + c.Code))
		}
		fmt.Fprintf(&card, "\nLecturer: %s\nRoom: %s\nCredits: %d", c.Lecturer, c.Room, c.Credits)
		if i == m.cursor && c.Notes != "" {
			card.WriteString("\n\n" + m.styles.Note.Render(c.Notes))
		}

		style := m.styles.Box
		if i == m.cursor {
			style = m.styles.ActiveBox
		}
		b.WriteString(style.Width(m.boxWidth()).Render(card.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderSchedule() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Weekly Schedule"))
	b.WriteString("\n\n")

	for _, day := range temporal.WeekOrder(m.cfg.WeekStart) {
		today := temporal.IsToday(day, m.now)
		style := m.styles.Box
		heading := m.styles.Text.Bold(true).Render(day)
		if today {
			style = m.styles.TodayBox
			heading = m.styles.Title.Render(day + " (today)")
		}

		body := m.styles.Muted.Render("No classes")
		if entries := m.cfg.Schedule.Day(day); len(entries) > 0 {
			body = m.renderEntries(entries, today)
		}
		b.WriteString(style.Width(m.boxWidth()).Render(heading + "\n" + body))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderReminders() string {
	return m.styles.Box.Width(m.boxWidth()).Render(m.renderTaskList("Daily reminder")) +
		"\n" + m.styles.Muted.Render("Add reminders with 'studinest remind add TEXT'.")
}
