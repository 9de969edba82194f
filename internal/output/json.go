package output

import (
	"time"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/temporal"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// AssignmentOutput represents an assignment in JSON output.
type AssignmentOutput struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Course    string         `json:"course"`
	DueDate   model.Date     `json:"due_date"`
	DueStatus string         `json:"due_status"`
	DaysUntil *int           `json:"days_until,omitempty"`
	Priority  model.Priority `json:"priority"`
	Progress  int            `json:"progress"`
	Notes     string         `json:"notes,omitempty"`
}

// NewAssignmentOutput creates an AssignmentOutput classified against now.
func NewAssignmentOutput(a model.Assignment, now time.Time) *AssignmentOutput {
	status := temporal.ClassifyDate(a.DueDate, now)
	out := &AssignmentOutput{
		ID:        a.ID,
		Title:     a.Title,
		Course:    a.Course,
		DueDate:   a.DueDate,
		DueStatus: status.String(),
		Priority:  a.Priority,
		Progress:  a.Progress,
		Notes:     a.Notes,
	}
	if status.Kind != temporal.DueUnknown {
		days := status.Days
		out.DaysUntil = &days
	}
	return out
}

// NewAssignmentOutputs converts a list of assignments.
func NewAssignmentOutputs(items []model.Assignment, now time.Time) []*AssignmentOutput {
	out := make([]*AssignmentOutput, len(items))
	for i, a := range items {
		out[i] = NewAssignmentOutput(a, now)
	}
	return out
}

// AssignmentsResponse represents the assignment list output in JSON.
type AssignmentsResponse struct {
	Assignments []*AssignmentOutput `json:"assignments"`
	TotalCount  int                 `json:"total_count"`
}

// CoursesResponse represents the course list output in JSON.
type CoursesResponse struct {
	Courses      []model.Course `json:"courses"`
	TotalCount   int            `json:"total_count"`
	TotalCredits int            `json:"total_credits"`
}

// NewCoursesResponse creates a CoursesResponse.
func NewCoursesResponse(courses []model.Course) *CoursesResponse {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return &CoursesResponse{Courses: courses, TotalCount: len(courses), TotalCredits: total}
}

// EntryOutput represents a schedule entry in JSON output.
type EntryOutput struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Course string `json:"course"`
	Room   string `json:"room"`
	Active bool   `json:"active"`
}

// DayOutput represents one weekday of the schedule.
type DayOutput struct {
	Day     string         `json:"day"`
	Today   bool           `json:"today"`
	Entries []*EntryOutput `json:"entries"`
}

// NewDayOutput marks which entries of a day are active at now. Only the
// current weekday can have active entries.
func NewDayOutput(day string, entries []model.ScheduleEntry, now time.Time) *DayOutput {
	today := temporal.IsToday(day, now)
	out := &DayOutput{Day: day, Today: today, Entries: make([]*EntryOutput, len(entries))}
	for i, e := range entries {
		out.Entries[i] = &EntryOutput{
			Start:  e.Start,
			End:    e.End,
			Course: e.Course,
			Room:   e.Room,
			Active: today && temporal.IsActive(e, now),
		}
	}
	return out
}

// NewWeekOutput lists every day of week in order.
func NewWeekOutput(week model.WeeklySchedule, order []string, now time.Time) []*DayOutput {
	out := make([]*DayOutput, len(order))
	for i, day := range order {
		out[i] = NewDayOutput(day, week.Day(day), now)
	}
	return out
}

// TasksResponse represents the daily task list in JSON.
type TasksResponse struct {
	Tasks     []model.DailyTask `json:"tasks"`
	Remaining int               `json:"remaining"`
}

// NewTasksResponse creates a TasksResponse.
func NewTasksResponse(tasks []model.DailyTask) *TasksResponse {
	remaining := 0
	for _, t := range tasks {
		if !t.Completed {
			remaining++
		}
	}
	if tasks == nil {
		tasks = []model.DailyTask{}
	}
	return &TasksResponse{Tasks: tasks, Remaining: remaining}
}

// TodayResponse represents the dashboard summary in JSON.
type TodayResponse struct {
	Now            string              `json:"now"`
	Day            string              `json:"day"`
	Schedule       *DayOutput          `json:"schedule"`
	Current        *EntryOutput        `json:"current,omitempty"`
	Upcoming       []*AssignmentOutput `json:"upcoming"`
	TasksRemaining int                 `json:"tasks_remaining"`
}

// NewTodayResponse builds the dashboard summary for now.
func NewTodayResponse(now time.Time, today []model.ScheduleEntry, upcoming []model.Assignment, tasks []model.DailyTask) *TodayResponse {
	day := temporal.DayName(now)
	sched := NewDayOutput(day, today, now)

	resp := &TodayResponse{
		Now:            now.Format(time.RFC3339),
		Day:            day,
		Schedule:       sched,
		Upcoming:       NewAssignmentOutputs(upcoming, now),
		TasksRemaining: NewTasksResponse(tasks).Remaining,
	}
	for _, e := range sched.Entries {
		if e.Active {
			resp.Current = e
			break
		}
	}
	return resp
}

// PreferencesResponse represents theme and page in JSON.
type PreferencesResponse struct {
	Theme model.Theme `json:"theme"`
	Page  model.Page  `json:"page"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SuccessResponse represents a simple success in JSON.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(message, suggestion string) error {
	return j.JSON(ErrorResponse{Status: "error", Error: message, Suggestion: suggestion})
}

// PrintSuccess prints a success response.
func (j *JSONFormatter) PrintSuccess(message string, id int64) error {
	return j.JSON(SuccessResponse{Status: "ok", Message: message, ID: id})
}
