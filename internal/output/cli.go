package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/studinest/internal/metrics"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/storage"
	"github.com/manav03panchal/studinest/internal/temporal"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#F4845F") // Peach
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleCourse = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)

	styleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// CourseName formats a course name.
func (c *CLIFormatter) CourseName(name string) string {
	return c.render(styleCourse, name)
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// DueLabel colors a due status: overdue red, due today yellow.
func (c *CLIFormatter) DueLabel(status temporal.DueStatus) string {
	switch status.Kind {
	case temporal.DueOverdue:
		return c.render(styleError, status.String())
	case temporal.DueToday:
		return c.render(styleWarning, status.String())
	case temporal.DueUnknown:
		return c.render(styleMuted, status.String())
	default:
		return status.String()
	}
}

// PriorityLabel colors a priority.
func (c *CLIFormatter) PriorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return c.render(styleError, string(p))
	case model.PriorityMedium:
		return c.render(styleWarning, string(p))
	case model.PriorityLow:
		return c.render(styleSuccess, string(p))
	default:
		return string(p)
	}
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-lipgloss.Width(s)) + "  "
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

// PrintAssignments prints assignments as a table.
func (c *CLIFormatter) PrintAssignments(items []model.Assignment, now time.Time) {
	if len(items) == 0 {
		c.Muted("No assignments.")
		c.Muted("Use 'studinest assignment add' to create one.")
		return
	}

	rows := make([]TableRow, len(items))
	for i, a := range items {
		rows[i] = TableRow{Columns: []string{
			fmt.Sprintf("%d", a.ID),
			a.Title,
			a.Course,
			FormatDateShort(a.DueDate),
			c.DueLabel(temporal.ClassifyDate(a.DueDate, now)),
			c.PriorityLabel(a.Priority),
			fmt.Sprintf("%s %3d%%", ProgressBar(float64(a.Progress), 10), a.Progress),
		}}
	}
	c.PrintTable([]string{"ID", "TITLE", "COURSE", "DUE", "STATUS", "PRIORITY", "PROGRESS"}, rows)
}

// PrintAssignment prints one assignment in detail.
func (c *CLIFormatter) PrintAssignment(a model.Assignment, now time.Time) {
	c.Title(a.Title)
	c.Printf("  ID:       %d\n", a.ID)
	c.Printf("  Course:   %s\n", c.CourseName(a.Course))
	c.Printf("  Due:      %s (%s)\n", FormatDate(a.DueDate), c.DueLabel(temporal.ClassifyDate(a.DueDate, now)))
	c.Printf("  Priority: %s\n", c.PriorityLabel(a.Priority))
	c.Printf("  Progress: %s %d%%\n", ProgressBar(float64(a.Progress), 20), a.Progress)
	if a.Notes != "" {
		c.Printf("  Notes:    %s\n", c.Note(a.Notes))
	}
}

// PrintCourses prints courses as a table.
func (c *CLIFormatter) PrintCourses(courses []model.Course) {
	if len(courses) == 0 {
		c.Muted("No courses.")
		c.Muted("Use 'studinest course add' to create one.")
		return
	}

	total := 0
	rows := make([]TableRow, len(courses))
	for i, course := range courses {
		total += course.Credits
		rows[i] = TableRow{Columns: []string{
			fmt.Sprintf("%d", course.ID),
			c.CourseName(course.Name),
			course.Code,
			course.Lecturer,
			course.Room,
			fmt.Sprintf("%d", course.Credits),
		}}
	}
	c.PrintTable([]string{"ID", "NAME", "CODE", "LECTURER", "ROOM", "CREDITS"}, rows)
	c.Muted(fmt.Sprintf("%d courses, %d credits", len(courses), total))
}

// PrintDay prints one weekday of the schedule, marking the active entry.
func (c *CLIFormatter) PrintDay(day *DayOutput) {
	heading := day.Day
	if day.Today {
		heading += " (today)"
	}
	c.Title(heading)

	if len(day.Entries) == 0 {
		c.Muted("  No classes.")
		return
	}
	for _, e := range day.Entries {
		line := fmt.Sprintf("  %s  %s", e.Start+" - "+e.End, c.CourseName(e.Course))
		if e.Room != "" {
			line += "  " + c.render(styleMuted, e.Room)
		}
		if e.Active {
			line += "  " + c.render(styleActive, "● now")
		}
		c.Println(line)
	}
}

// PrintWeek prints every day of the week.
func (c *CLIFormatter) PrintWeek(days []*DayOutput) {
	for i, day := range days {
		if i > 0 {
			c.Println()
		}
		c.PrintDay(day)
	}
}

// PrintTasks prints the daily task checklist.
func (c *CLIFormatter) PrintTasks(tasks []model.DailyTask) {
	if len(tasks) == 0 {
		c.Muted("No reminders.")
		c.Muted("Use 'studinest remind add <text>' to create one.")
		return
	}
	for _, t := range tasks {
		box := "[ ]"
		text := t.Text
		if t.Completed {
			box = "[x]"
			text = c.render(styleMuted, text)
		}
		c.Printf("  %s %s  %s\n", box, text, c.render(styleMuted, fmt.Sprintf("#%d", t.ID)))
	}
}

// PrintToday prints the dashboard summary.
func (c *CLIFormatter) PrintToday(resp *TodayResponse, now time.Time) {
	c.Title(fmt.Sprintf("%s, %s", resp.Day, now.Local().Format("January 2 2006 15:04")))
	c.Println()

	if resp.Current != nil {
		c.Printf("Now: %s in %s until %s\n", c.CourseName(resp.Current.Course), resp.Current.Room, resp.Current.End)
	} else {
		c.Muted("No class in progress.")
	}
	c.Println()

	c.PrintDay(resp.Schedule)
	c.Println()

	c.Title("Upcoming")
	if len(resp.Upcoming) == 0 {
		c.Muted("  Nothing due. Enjoy the break!")
	}
	for _, a := range resp.Upcoming {
		status := temporal.ClassifyDate(a.DueDate, now)
		c.Printf("  %s  %s  %s\n", a.Title, c.render(styleMuted, a.Course), c.DueLabel(status))
	}
	c.Println()

	c.Printf("%d reminder(s) left today\n", resp.TasksRemaining)
}

// PrintHealth prints a storage health report.
func (c *CLIFormatter) PrintHealth(report *storage.HealthReport) {
	rows := make([]TableRow, len(report.Slices))
	for i, s := range report.Slices {
		state := string(s.State)
		switch s.State {
		case storage.SliceCorrupt, storage.SliceError:
			state = c.render(styleError, state)
		case storage.SliceOK:
			state = c.render(styleSuccess, state)
		}
		rows[i] = TableRow{Columns: []string{s.Key, state, fmt.Sprintf("%d", s.Bytes), s.Error}}
	}
	c.PrintTable([]string{"KEY", "STATE", "BYTES", "DETAIL"}, rows)

	if report.Healthy {
		c.Success("Storage is healthy")
	} else {
		c.Warning("Corrupt slices were replaced by their defaults. Use 'studinest doctor --reset SLICE' to restore any other slice.")
	}
}

// PrintSamples prints metric samples.
func (c *CLIFormatter) PrintSamples(samples []metrics.Sample) {
	if len(samples) == 0 {
		c.Muted("No store activity recorded.")
		return
	}
	rows := make([]TableRow, len(samples))
	for i, s := range samples {
		rows[i] = TableRow{Columns: []string{s.Name, s.LabelString(), fmt.Sprintf("%g", s.Value)}}
	}
	c.PrintTable([]string{"METRIC", "LABELS", "VALUE"}, rows)
}
