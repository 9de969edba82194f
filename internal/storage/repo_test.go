package storage

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
)

func day(n int) model.Date {
	return model.NewDate(testNow.AddDate(0, 0, n))
}

func seedAssignments() []model.Assignment {
	return []model.Assignment{
		{ID: 1, Title: "Presentation", Course: "Sociology", DueDate: day(7), Priority: model.PriorityMedium, Progress: 50},
		{ID: 2, Title: "Essay", Course: "Literature", DueDate: day(2), Priority: model.PriorityHigh, Progress: 25},
		{ID: 3, Title: "Lab report", Course: "Chemistry", DueDate: day(5), Priority: model.PriorityHigh, Progress: 100},
		{ID: 4, Title: "Exercises", Course: "Calculus", DueDate: day(10), Priority: model.PriorityLow, Progress: 10},
	}
}

// =============================================================================
// AssignmentRepo Tests
// =============================================================================

func TestAssignmentRepoDefaults(t *testing.T) {
	store, medium := setupTestStore(t)
	repo := NewAssignmentRepo(store, seedAssignments())

	assert.Len(t, repo.List(), 4)
	assert.Equal(t, 1, medium.total(), "mount writes once")

	again := NewAssignmentRepo(store, nil)
	assert.Len(t, again.List(), 4, "second mount reads stored value")
}

func TestAssignmentRepoSortedAndUpcoming(t *testing.T) {
	store, _ := setupTestStore(t)
	items := append(seedAssignments(), model.Assignment{ID: 5, Title: "Mystery", DueDate: model.RawDate("xyzzy")})
	repo := NewAssignmentRepo(store, items)

	var order []int64
	for _, a := range repo.SortedByDue() {
		order = append(order, a.ID)
	}
	assert.Equal(t, []int64{2, 3, 1, 4, 5}, order)

	upcoming := repo.Upcoming(3)
	require.Len(t, upcoming, 3)
	assert.Equal(t, int64(2), upcoming[0].ID)
	assert.Equal(t, int64(1), upcoming[1].ID, "finished assignments are skipped")
	assert.Equal(t, int64(4), upcoming[2].ID)

	assert.Len(t, repo.Upcoming(0), 4)
}

func TestAssignmentRepoCreate(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewAssignmentRepo(store, nil)

	t.Run("assigns_id_and_default_priority", func(t *testing.T) {
		a, err := repo.Create(model.Assignment{Title: "  Essay  ", Course: "Literature", DueDate: day(3)})
		require.NoError(t, err)
		assert.NotZero(t, a.ID)
		assert.Equal(t, "Essay", a.Title)
		assert.Equal(t, model.PriorityMedium, a.Priority)
		assert.Equal(t, 0, a.Progress)

		got, err := repo.Get(a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Title, got.Title)
	})

	t.Run("ids_are_unique", func(t *testing.T) {
		a, err := repo.Create(model.Assignment{Title: "One", DueDate: day(1)})
		require.NoError(t, err)
		b, err := repo.Create(model.Assignment{Title: "Two", DueDate: day(1)})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		before := len(repo.List())

		_, err := repo.Create(model.Assignment{Title: "", DueDate: day(1)})
		assert.True(t, errors.IsUserError(err))

		_, err = repo.Create(model.Assignment{Title: "No date"})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidDate))

		_, err = repo.Create(model.Assignment{Title: "Too far", DueDate: day(1), Progress: 101})
		assert.True(t, errors.IsUserError(err))

		_, err = repo.Create(model.Assignment{Title: "Odd", DueDate: day(1), Priority: "urgent"})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidPriority))

		assert.Len(t, repo.List(), before)
	})
}

func TestAssignmentRepoUpdate(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewAssignmentRepo(store, seedAssignments())

	t.Run("merges_fields_and_keeps_id", func(t *testing.T) {
		progress := 75
		notes := "outline done"
		got, err := repo.Update(2, model.AssignmentPatch{Progress: &progress, Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
		assert.Equal(t, "Essay", got.Title)
		assert.Equal(t, 75, got.Progress)

		stored, err := repo.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "outline done", stored.Notes)
	})

	t.Run("rejects_out_of_range_progress", func(t *testing.T) {
		progress := -1
		_, err := repo.Update(2, model.AssignmentPatch{Progress: &progress})
		assert.Error(t, err)

		stored, _ := repo.Get(2)
		assert.Equal(t, 75, stored.Progress)
	})
}

func TestAssignmentRepoKeepsRecordsNextToNumericDueDate(t *testing.T) {
	store, medium := setupTestStore(t)
	raw := `[{"id":1,"title":"Essay","course":"Literature","dueDate":"2024-01-12T00:00:00Z","priority":"High","progress":25,"notes":""},` +
		`{"id":2,"title":"Quiz","course":"Calculus","dueDate":1704844800000,"priority":"Low","progress":0,"notes":""}]`
	require.NoError(t, medium.Set(store.Key(model.SliceAssignments), []byte(raw)))

	repo := NewAssignmentRepo(store, []model.Assignment{})
	items := repo.List()
	require.Len(t, items, 2)
	assert.True(t, items[0].DueDate.Valid())
	assert.Equal(t, "Essay", items[0].Title)
	assert.False(t, items[1].DueDate.Valid())
	assert.Equal(t, "1704844800000", items[1].DueDate.Raw)

	// the mount write keeps both records
	reloaded := NewAssignmentRepo(store, []model.Assignment{})
	assert.Len(t, reloaded.List(), 2)
	assert.True(t, CheckIntegrity(store).Healthy)
}

func TestAssignmentRepoIDMiss(t *testing.T) {
	store, medium := setupTestStore(t)
	repo := NewAssignmentRepo(store, seedAssignments())
	before := repo.List()
	writes := medium.total()

	title := "ghost"
	_, err := repo.Update(999, model.AssignmentPatch{Title: &title})
	assert.True(t, stderrors.Is(err, errors.ErrAssignmentNotFound))

	err = repo.Delete(999)
	assert.True(t, stderrors.Is(err, errors.ErrAssignmentNotFound))

	_, err = repo.Get(999)
	assert.True(t, stderrors.Is(err, errors.ErrAssignmentNotFound))

	assert.Equal(t, before, repo.List())
	assert.Equal(t, writes, medium.total())
}

func TestAssignmentRepoDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewAssignmentRepo(store, seedAssignments())

	require.NoError(t, repo.Delete(3))
	ids := []int64{}
	for _, a := range repo.List() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)

	reloaded := NewAssignmentRepo(store, nil)
	assert.Len(t, reloaded.List(), 3)
}

func TestAssignmentRepoListIsACopy(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewAssignmentRepo(store, seedAssignments())

	list := repo.List()
	list[0].Title = "changed"
	got, _ := repo.Get(1)
	assert.Equal(t, "Presentation", got.Title)
}

// =============================================================================
// CourseRepo Tests
// =============================================================================

func TestCourseRepo(t *testing.T) {
	store, medium := setupTestStore(t)
	repo := NewCourseRepo(store, []model.Course{{ID: 1, Name: "Kalkulus I", Code: "MA101", Credits: 3}})

	t.Run("create", func(t *testing.T) {
		c, err := repo.Create(model.Course{Name: "Kimia Dasar", Credits: 4})
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.Len(t, repo.List(), 2)
	})

	t.Run("create_rejects_negative_credits", func(t *testing.T) {
		_, err := repo.Create(model.Course{Name: "Bad", Credits: -1})
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("update_keeps_id", func(t *testing.T) {
		room := "C-105"
		c, err := repo.Update(1, model.CoursePatch{Room: &room})
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "MA101", c.Code)
		assert.Equal(t, "C-105", c.Room)
	})

	t.Run("find_by_name", func(t *testing.T) {
		c, ok := repo.FindByName("Kalkulus I")
		assert.True(t, ok)
		assert.Equal(t, int64(1), c.ID)
		_, ok = repo.FindByName("Nope")
		assert.False(t, ok)
	})

	t.Run("id_miss", func(t *testing.T) {
		writes := medium.total()
		err := repo.Delete(42)
		assert.True(t, stderrors.Is(err, errors.ErrCourseNotFound))
		name := "x"
		_, err = repo.Update(42, model.CoursePatch{Name: &name})
		assert.True(t, stderrors.Is(err, errors.ErrCourseNotFound))
		assert.Equal(t, writes, medium.total())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(1))
		_, err := repo.Get(1)
		assert.Error(t, err)
	})
}

// =============================================================================
// DailyTaskRepo Tests
// =============================================================================

func TestDailyTaskRepo(t *testing.T) {
	store, medium := setupTestStore(t)
	repo := NewDailyTaskRepo(store, []model.DailyTask{
		{ID: 1, Text: "Review notes", Completed: false},
		{ID: 2, Text: "Read chapter 4", Completed: true},
	})
	assert.Equal(t, 1, repo.Remaining())

	t.Run("add", func(t *testing.T) {
		task, err := repo.Add("  Buy pens ")
		require.NoError(t, err)
		assert.Equal(t, "Buy pens", task.Text)
		assert.False(t, task.Completed)
		assert.Len(t, repo.List(), 3)
	})

	t.Run("add_blank_rejected", func(t *testing.T) {
		writes := medium.total()
		_, err := repo.Add("   ")
		assert.True(t, errors.IsUserError(err))
		assert.Equal(t, writes, medium.total())
	})

	t.Run("toggle", func(t *testing.T) {
		task, err := repo.Toggle(1)
		require.NoError(t, err)
		assert.True(t, task.Completed)

		task, err = repo.Toggle(1)
		require.NoError(t, err)
		assert.False(t, task.Completed)
	})

	t.Run("id_miss", func(t *testing.T) {
		before := repo.List()
		_, err := repo.Toggle(77)
		assert.True(t, stderrors.Is(err, errors.ErrTaskNotFound))
		assert.True(t, stderrors.Is(repo.Delete(77), errors.ErrTaskNotFound))
		assert.Equal(t, before, repo.List())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(2))
		assert.Len(t, repo.List(), 2)
	})
}

// =============================================================================
// Preference and Schedule Tests
// =============================================================================

func TestThemeRepo(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewThemeRepo(store, model.ThemeLight)

	assert.Equal(t, model.ThemeLight, repo.Get())
	assert.Equal(t, model.ThemeDark, repo.Toggle())
	assert.Equal(t, model.ThemeDark, NewThemeRepo(store, model.ThemeLight).Get())

	repo.Set(model.ThemeLight)
	assert.Equal(t, model.ThemeLight, repo.Get())
}

func TestPageRepo(t *testing.T) {
	store, _ := setupTestStore(t)
	repo := NewPageRepo(store, model.PageDashboard)
	repo.Set(model.PageReminders)
	assert.Equal(t, model.PageReminders, NewPageRepo(store, model.PageDashboard).Get())
}

func TestScheduleRepo(t *testing.T) {
	store, _ := setupTestStore(t)
	week := model.WeeklySchedule{
		"Monday": {
			{Start: "08:00", End: "10:00", Course: "Kalkulus I", Room: "C-105"},
			{Start: "13:00", End: "15:00", Course: "Kimia Dasar", Room: "Lab 2"},
		},
	}
	repo := NewScheduleRepo(store, week)

	monday := repo.Day("Monday")
	require.Len(t, monday, 2)
	assert.Equal(t, "Kalkulus I", monday[0].Course, "insertion order is display order")
	assert.Empty(t, repo.Day("Sunday"))

	reloaded := NewScheduleRepo(store, nil)
	assert.Equal(t, week, reloaded.Get())
}

func TestReloaders(t *testing.T) {
	store, _ := setupTestStore(t)
	reloaders := []Repo{
		NewAssignmentRepo(store, nil),
		NewCourseRepo(store, nil),
		NewScheduleRepo(store, nil),
		NewDailyTaskRepo(store, nil),
		NewThemeRepo(store, model.ThemeLight),
		NewPageRepo(store, model.PageDashboard),
	}

	tasks := NewDailyTaskRepo(store, nil)
	_, err := tasks.Add("Water plants")
	require.NoError(t, err)

	for _, r := range reloaders {
		r.Reload()
		assert.NoError(t, r.LastWriteErr())
	}
	assert.Len(t, reloaders[3].(*DailyTaskRepo).List(), 1)
}
