package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studinest/internal/metrics"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/storage"
)

// 2024-01-08 is a Monday.
var testNow = time.Date(2024, 1, 8, 9, 0, 0, 0, time.Local)

func plainCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever}), &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.IsJSON())
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{
			Writer:    &buf,
			ColorMode: ColorAuto,
		}
		// Buffer is not a terminal
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_format_disables_auto", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidth(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	assert.Equal(t, DefaultWidth, f.Width())
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("hello")
	f.Println(" world")
	f.Printf("%d%%", 50)
	assert.Equal(t, "hello world\n50%", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	data := map[string]string{"key": "value"}
	err := f.JSON(data)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"key": "value"`)
}

// =============================================================================
// Date Formatting Tests
// =============================================================================

func TestFormatDate(t *testing.T) {
	d := model.NewDate(time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "Sat, Jan 20 2024", FormatDate(d))
	assert.Equal(t, "Jan 20", FormatDateShort(d))

	assert.Equal(t, "xyzzy", FormatDate(model.RawDate("xyzzy")))
	assert.Equal(t, "xyzzy", FormatDateShort(model.RawDate("xyzzy")))
	assert.Equal(t, "-", FormatDate(model.Date{}))
}

func TestFormatSlot(t *testing.T) {
	assert.Equal(t, "08:00 - 10:00", FormatSlot(model.ScheduleEntry{Start: "08:00", End: "10:00"}))
	assert.Equal(t, "09:00", FormatClock(testNow))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5, 10))
	assert.Equal(t, "██████████", ProgressBar(150, 10))
}

// =============================================================================
// JSON Output Tests
// =============================================================================

func TestNewAssignmentOutput(t *testing.T) {
	t.Run("valid_date", func(t *testing.T) {
		a := model.Assignment{ID: 3, Title: "Essay", DueDate: model.NewDate(testNow.AddDate(0, 0, 2)), Priority: model.PriorityHigh}
		out := NewAssignmentOutput(a, testNow)
		assert.Equal(t, "Due in 2 days", out.DueStatus)
		require.NotNil(t, out.DaysUntil)
		assert.Equal(t, 2, *out.DaysUntil)
	})

	t.Run("raw_date", func(t *testing.T) {
		a := model.Assignment{ID: 4, Title: "Mystery", DueDate: model.RawDate("someday")}
		out := NewAssignmentOutput(a, testNow)
		assert.Equal(t, "No due date", out.DueStatus)
		assert.Nil(t, out.DaysUntil)

		data, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"due_date":"someday"`)
		assert.NotContains(t, string(data), "days_until")
	})
}

func TestNewDayOutput(t *testing.T) {
	entries := []model.ScheduleEntry{
		{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"},
		{Start: "13:00", End: "15:00", Course: "Kimia", Room: "Lab"},
	}

	today := NewDayOutput("Monday", entries, testNow)
	assert.True(t, today.Today)
	assert.True(t, today.Entries[0].Active)
	assert.False(t, today.Entries[1].Active)

	other := NewDayOutput("Wednesday", entries, testNow)
	assert.False(t, other.Today)
	assert.False(t, other.Entries[0].Active, "only today's entries can be active")
}

func TestNewWeekOutput(t *testing.T) {
	week := model.WeeklySchedule{"Monday": {{Start: "08:00", End: "10:00", Course: "A"}}}
	order := []string{"Sunday", "Monday"}
	days := NewWeekOutput(week, order, testNow)
	require.Len(t, days, 2)
	assert.Equal(t, "Sunday", days[0].Day)
	assert.Empty(t, days[0].Entries)
	assert.True(t, days[1].Today)
}

func TestNewTodayResponse(t *testing.T) {
	entries := []model.ScheduleEntry{{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"}}
	upcoming := []model.Assignment{{ID: 1, Title: "Essay", DueDate: model.NewDate(testNow.AddDate(0, 0, 1))}}
	tasks := []model.DailyTask{{ID: 1, Text: "a", Completed: true}, {ID: 2, Text: "b"}}

	resp := NewTodayResponse(testNow, entries, upcoming, tasks)
	assert.Equal(t, "Monday", resp.Day)
	require.NotNil(t, resp.Current)
	assert.Equal(t, "Kalkulus I", resp.Current.Course)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "Due tomorrow", resp.Upcoming[0].DueStatus)
	assert.Equal(t, 1, resp.TasksRemaining)

	late := NewTodayResponse(testNow.Add(5*time.Hour), entries, nil, nil)
	assert.Nil(t, late.Current)
	assert.Empty(t, late.Upcoming)
}

func TestCollectionResponses(t *testing.T) {
	courses := NewCoursesResponse([]model.Course{{Credits: 3}, {Credits: 4}})
	assert.Equal(t, 2, courses.TotalCount)
	assert.Equal(t, 7, courses.TotalCredits)
	assert.NotNil(t, NewCoursesResponse(nil).Courses)

	tasks := NewTasksResponse(nil)
	assert.NotNil(t, tasks.Tasks)
	assert.Equal(t, 0, tasks.Remaining)
}

func TestJSONFormatterResponses(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON})

	require.NoError(t, j.PrintError("Assignment not found", "Run 'studinest assignment list'"))
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errResp))
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "Assignment not found", errResp.Error)

	buf.Reset()
	require.NoError(t, j.PrintSuccess("Created", 42))
	var ok SuccessResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ok))
	assert.Equal(t, int64(42), ok.ID)
}

// =============================================================================
// CLI Output Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	c, buf := plainCLI()
	c.Title("Title")
	c.Success("done")
	c.Warning("careful")
	c.Error("failed")
	c.Muted("quiet")

	out := buf.String()
	assert.Contains(t, out, "Title\n")
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ failed")
	assert.Contains(t, out, "quiet")
}

func TestPrintTable(t *testing.T) {
	c, buf := plainCLI()
	c.PrintTable([]string{"ID", "NAME"}, []TableRow{
		{Columns: []string{"1", "Kalkulus I"}},
		{Columns: []string{"22", "Kimia"}},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "1   Kalkulus I", lines[2])
	assert.Equal(t, "22  Kimia", lines[3])

	buf.Reset()
	c.PrintTable([]string{"ID"}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintAssignments(t *testing.T) {
	c, buf := plainCLI()
	c.PrintAssignments(nil, testNow)
	assert.Contains(t, buf.String(), "No assignments.")

	buf.Reset()
	c.PrintAssignments([]model.Assignment{
		{ID: 1, Title: "Essay", Course: "Sastra", DueDate: model.NewDate(testNow.AddDate(0, 0, -3)), Priority: model.PriorityHigh, Progress: 40},
	}, testNow)
	out := buf.String()
	assert.Contains(t, out, "Essay")
	assert.Contains(t, out, "Overdue")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "40%")
}

func TestPrintAssignment(t *testing.T) {
	c, buf := plainCLI()
	c.PrintAssignment(model.Assignment{ID: 9, Title: "Lab", Course: "Kimia", DueDate: model.NewDate(testNow), Priority: model.PriorityLow, Notes: "bring coat"}, testNow)
	out := buf.String()
	assert.Contains(t, out, "ID:       9")
	assert.Contains(t, out, "Due today")
	assert.Contains(t, out, "bring coat")
}

func TestPrintCourses(t *testing.T) {
	c, buf := plainCLI()
	c.PrintCourses([]model.Course{{ID: 1, Name: "Kalkulus I", Credits: 4}, {ID: 2, Name: "Kimia", Credits: 3}})
	assert.Contains(t, buf.String(), "2 courses, 7 credits")
}

func TestPrintDay(t *testing.T) {
	c, buf := plainCLI()
	c.PrintDay(NewDayOutput("Monday", []model.ScheduleEntry{{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"}}, testNow))
	out := buf.String()
	assert.Contains(t, out, "Monday (today)")
	assert.Contains(t, out, "08:00 - 10:00  Kalkulus I  C-105  ● now")

	buf.Reset()
	c.PrintDay(NewDayOutput("Friday", nil, testNow))
	assert.Contains(t, buf.String(), "No classes.")
}

func TestPrintTasks(t *testing.T) {
	c, buf := plainCLI()
	c.PrintTasks([]model.DailyTask{{ID: 1, Text: "Review", Completed: true}, {ID: 2, Text: "Buy pens"}})
	out := buf.String()
	assert.Contains(t, out, "[x] Review")
	assert.Contains(t, out, "[ ] Buy pens  #2")
}

func TestPrintToday(t *testing.T) {
	c, buf := plainCLI()
	resp := NewTodayResponse(testNow,
		[]model.ScheduleEntry{{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"}},
		nil,
		[]model.DailyTask{{ID: 1, Text: "x"}},
	)
	c.PrintToday(resp, testNow)
	out := buf.String()
	assert.Contains(t, out, "Now: Kalkulus I in C-105 until 10:00")
	assert.Contains(t, out, "Nothing due")
	assert.Contains(t, out, "1 reminder(s) left today")
}

func TestPrintHealth(t *testing.T) {
	c, buf := plainCLI()
	c.PrintHealth(&storage.HealthReport{
		Healthy: false,
		Slices: []storage.SliceStatus{
			{Key: "studinest-theme", State: storage.SliceOK, Bytes: 7},
			{Key: "studinest-courses", State: storage.SliceCorrupt, Bytes: 9, Error: "not valid JSON"},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "studinest-courses")
	assert.Contains(t, out, "corrupt")
	assert.Contains(t, out, "doctor --reset")
}

func TestPrintSamples(t *testing.T) {
	c, buf := plainCLI()
	c.PrintSamples(nil)
	assert.Contains(t, buf.String(), "No store activity")

	buf.Reset()
	c.PrintSamples([]metrics.Sample{{Name: "studinest_store_reads_total", Labels: map[string]string{"outcome": "hit", "key": "k"}, Value: 2}})
	assert.Contains(t, buf.String(), "key=k,outcome=hit")
}
