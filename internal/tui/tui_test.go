package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/seed"
	"github.com/manav03panchal/studinest/internal/storage"
)

// Wednesday, during the sample 08:00-10:00 class.
var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func setupTestConfig(t *testing.T) (Config, *storage.Store) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := func() time.Time { return fixedNow }
	store := storage.NewStore(db, storage.StoreOptions{Now: now})
	data := seed.Sample(fixedNow)

	return Config{
		Theme:         storage.NewThemeRepo(store, data.Theme),
		Page:          storage.NewPageRepo(store, data.Page),
		Assignments:   storage.NewAssignmentRepo(store, data.Assignments),
		Courses:       storage.NewCourseRepo(store, data.Courses),
		Schedule:      storage.NewScheduleRepo(store, data.Schedule),
		Tasks:         storage.NewDailyTaskRepo(store, data.DailyTasks),
		Now:           now,
		TickInterval:  time.Minute,
		UpcomingLimit: 3,
		WeekStart:     time.Monday,
	}, store
}

func newTestModel(t *testing.T) (*Model, Config) {
	cfg, _ := setupTestConfig(t)
	m := New(cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, cfg
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// =============================================================================
// Styles Tests
// =============================================================================

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, LightPalette, PaletteFor(model.ThemeLight))
	assert.Equal(t, DarkPalette, PaletteFor(model.ThemeDark))
	assert.Equal(t, LightPalette, PaletteFor(model.Theme("sepia")))
}

func TestProgressBar(t *testing.T) {
	s := NewStyles(model.ThemeLight)

	tests := []struct {
		name       string
		percentage float64
		filled     int
	}{
		{"zero", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"over", 150, 10},
		{"negative", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := s.ProgressBar(tt.percentage, 10)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
}

// =============================================================================
// Model Tests
// =============================================================================

func TestNewModel(t *testing.T) {
	cfg, _ := setupTestConfig(t)
	m := New(cfg)

	assert.Equal(t, model.PageDashboard, m.Page())
	assert.Equal(t, fixedNow, m.now)
	assert.Equal(t, "Loading...", m.View())
	assert.NotNil(t, m.Init())
}

func TestNewModelUnknownStoredPage(t *testing.T) {
	cfg, _ := setupTestConfig(t)
	cfg.Page.Set(model.Page("settings"))

	m := New(cfg)
	assert.Equal(t, model.PageDashboard, m.Page())
}

func TestPageNavigation(t *testing.T) {
	m, cfg := newTestModel(t)

	t.Run("next_page_persists", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, model.PageAssignments, m.Page())
		assert.Equal(t, model.PageAssignments, cfg.Page.Get())
	})

	t.Run("prev_page_wraps", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, model.PageReminders, m.Page())
	})

	t.Run("jump_by_number", func(t *testing.T) {
		m.Update(runeKey('4'))
		assert.Equal(t, model.PageSchedule, m.Page())
		m.Update(runeKey('1'))
		assert.Equal(t, model.PageDashboard, m.Page())
	})
}

func TestToggleReminder(t *testing.T) {
	m, cfg := newTestModel(t)

	// cursor starts on the first task, which the sample marks completed
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, cfg.Tasks.List()[0].Completed)

	m.Update(runeKey('j'))
	m.Update(runeKey('x'))
	assert.True(t, cfg.Tasks.List()[1].Completed)
	assert.Nil(t, m.err)
}

func TestToggleIgnoredOnOtherPages(t *testing.T) {
	m, cfg := newTestModel(t)
	before := cfg.Tasks.List()

	m.Update(runeKey('2'))
	m.Update(runeKey('x'))
	assert.Equal(t, before, cfg.Tasks.List())
}

func TestDeleteReminder(t *testing.T) {
	m, cfg := newTestModel(t)

	t.Run("ignored_on_dashboard", func(t *testing.T) {
		m.Update(runeKey('d'))
		assert.Len(t, cfg.Tasks.List(), 3)
	})

	t.Run("deletes_on_reminders_page", func(t *testing.T) {
		m.Update(runeKey('5'))
		m.Update(runeKey('j'))
		m.Update(runeKey('j'))
		m.Update(runeKey('d'))

		tasks := cfg.Tasks.List()
		require.Len(t, tasks, 2)
		assert.Equal(t, 1, m.cursor)
		assert.Contains(t, m.message, "Deleted")
	})
}

func TestCursorBounds(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(runeKey('k'))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m.Update(runeKey('j'))
	}
	assert.Equal(t, 2, m.cursor)
}

func TestThemeToggle(t *testing.T) {
	m, cfg := newTestModel(t)

	m.Update(runeKey('t'))
	assert.Equal(t, model.ThemeDark, cfg.Theme.Get())
	assert.Equal(t, DarkPalette, m.styles.Palette)

	m.Update(runeKey('t'))
	assert.Equal(t, model.ThemeLight, cfg.Theme.Get())
}

func TestStorageChangedReloads(t *testing.T) {
	cfg, store := setupTestConfig(t)
	m := New(cfg)

	// another process adds a reminder
	other := storage.NewDailyTaskRepo(store, nil)
	_, err := other.Add("Print slides")
	require.NoError(t, err)
	assert.Len(t, cfg.Tasks.List(), 3)

	_, cmd := m.Update(storageChangedMsg{})
	assert.Len(t, cfg.Tasks.List(), 4)
	assert.Nil(t, cmd, "no watcher channel configured")
}

func TestTickRefreshesClock(t *testing.T) {
	cfg, _ := setupTestConfig(t)
	current := fixedNow
	cfg.Now = func() time.Time { return current }
	m := New(cfg)

	m.setMessage("hello", time.Second)
	current = fixedNow.Add(time.Minute)

	_, cmd := m.Update(tickMsg(current))
	assert.Equal(t, current, m.now)
	assert.Empty(t, m.message)
	assert.NotNil(t, cmd)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// =============================================================================
// View Tests
// =============================================================================

func TestDashboardView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Studinest")
	assert.Contains(t, view, "Upcoming assignments")
	assert.Contains(t, view, "Essay Analisis Puisi")
	assert.Contains(t, view, "Due in 2 days")
	assert.NotContains(t, view, "Mengerjakan Latihan Soal", "limited to three")
	assert.Contains(t, view, "Schedule (Wednesday)")
	assert.Contains(t, view, "now")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "2 of 3 left")
}

func TestDashboardViewEmpty(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewStore(db, storage.StoreOptions{})
	data := seed.Empty()
	m := New(Config{
		Theme:       storage.NewThemeRepo(store, data.Theme),
		Page:        storage.NewPageRepo(store, data.Page),
		Assignments: storage.NewAssignmentRepo(store, data.Assignments),
		Courses:     storage.NewCourseRepo(store, data.Courses),
		Schedule:    storage.NewScheduleRepo(store, data.Schedule),
		Tasks:       storage.NewDailyTaskRepo(store, data.DailyTasks),
		Now:         func() time.Time { return fixedNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "No upcoming assignments")
	assert.Contains(t, view, "No classes today. Free time!")
	assert.Contains(t, view, "Your list is empty!")
}

func TestPageViews(t *testing.T) {
	m, _ := newTestModel(t)

	t.Run("assignments", func(t *testing.T) {
		m.Update(runeKey('2'))
		view := m.View()
		assert.Contains(t, view, "Assignments")
		assert.Contains(t, view, "Mengerjakan Latihan Soal")
		// notes of the selected card only
		assert.Contains(t, view, "Fokus pada analisis metafora")
		assert.NotContains(t, view, "Bab 3 tentang turunan")
	})

	t.Run("courses", func(t *testing.T) {
		m.Update(runeKey('3'))
		view := m.View()
		assert.Contains(t, view, "14 credits total")
		assert.Contains(t, view, "Dr. Anisa Lestari")
	})

	t.Run("schedule", func(t *testing.T) {
		m.Update(runeKey('4'))
		view := m.View()
		assert.Contains(t, view, "Weekly Schedule")
		assert.Contains(t, view, "Wednesday (today)")
		assert.Less(t, strings.Index(view, "Monday"), strings.Index(view, "Sunday"))
		assert.Contains(t, view, "No classes")
	})

	t.Run("reminders", func(t *testing.T) {
		m.Update(runeKey('5'))
		view := m.View()
		assert.Contains(t, view, "Daily reminder")
		assert.Contains(t, view, "Beli alat tulis untuk praktikum")
	})
}

// =============================================================================
// Watcher Tests
// =============================================================================

func TestStorageWatcherDirectory(t *testing.T) {
	dir := t.TempDir()
	sw, err := NewStorageWatcher(dir, true)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001.vlog"), []byte("x"), 0o644))

	select {
	case <-sw.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestStorageWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studinest.db")
	sw, err := NewStorageWatcher(path, false)
	require.NoError(t, err)
	defer sw.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"db_write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"wal_write", fsnotify.Event{Name: path + "-wal", Op: fsnotify.Write}, true},
		{"other_file", fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}, false},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sw.relevant(tt.event))
		})
	}
}

func TestStorageWatcherCloseTwice(t *testing.T) {
	sw, err := NewStorageWatcher(t.TempDir(), true)
	require.NoError(t, err)

	assert.NoError(t, sw.Close())
	assert.NoError(t, sw.Close())
}

func TestWaitForChange(t *testing.T) {
	assert.Nil(t, waitForChange(nil))

	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	cmd := waitForChange(ch)
	require.NotNil(t, cmd)
	assert.Equal(t, storageChangedMsg{}, cmd())
}
