package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/storage"
)

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// Config holds configuration for the dashboard.
type Config struct {
	Theme       *storage.ThemeRepo
	Page        *storage.PageRepo
	Assignments *storage.AssignmentRepo
	Courses     *storage.CourseRepo
	Schedule    *storage.ScheduleRepo
	Tasks       *storage.DailyTaskRepo

	Now           func() time.Time
	TickInterval  time.Duration
	UpcomingLimit int // 0 lists every unfinished assignment
	WeekStart     time.Weekday

	// Changes, if set, triggers a reload of every slice.
	Changes <-chan struct{}
}

// Model is the main bubbletea model for the dashboard.
type Model struct {
	cfg    Config
	keys   keyMap
	help   help.Model
	styles Styles

	// UI state
	page       model.Page
	cursor     int
	now        time.Time
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time
}

// New creates a new dashboard model.
func New(cfg Config) *Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Minute
	}

	m := &Model{
		cfg:  cfg,
		keys: defaultKeyMap(),
		help: help.New(),
		page: cfg.Page.Get(),
		now:  cfg.Now(),
	}
	if _, err := model.ParsePage(string(m.page)); err != nil {
		m.page = model.PageDashboard
	}
	m.applyTheme()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		waitForChange(m.cfg.Changes),
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.cfg.Now()
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now.After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case storageChangedMsg:
		m.reload()
		return m, waitForChange(m.cfg.Changes)
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		m.setPage(m.offsetPage(1))

	case key.Matches(msg, m.keys.PrevPage):
		m.setPage(m.offsetPage(-1))

	case key.Matches(msg, m.keys.Jump):
		pages := model.Pages()
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(pages) {
			m.setPage(pages[i])
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTask()

	case key.Matches(msg, m.keys.Delete):
		m.deleteTask()

	case key.Matches(msg, m.keys.Theme):
		theme := m.cfg.Theme.Toggle()
		m.applyTheme()
		m.checkWrite(m.cfg.Theme.LastWriteErr())
		m.setMessage(fmt.Sprintf("Theme: %s", theme), 2*time.Second)

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		m.setMessage("Refreshed", time.Second)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// Page returns the page being shown.
func (m *Model) Page() model.Page {
	return m.page
}

func (m *Model) offsetPage(delta int) model.Page {
	pages := model.Pages()
	for i, p := range pages {
		if p == m.page {
			return pages[(i+delta+len(pages))%len(pages)]
		}
	}
	return model.PageDashboard
}

// setPage switches pages and persists the choice.
func (m *Model) setPage(p model.Page) {
	if p == m.page {
		return
	}
	m.page = p
	m.cursor = 0
	m.cfg.Page.Set(p)
	m.checkWrite(m.cfg.Page.LastWriteErr())
}

// listLen is the number of selectable rows on the current page.
func (m *Model) listLen() int {
	switch m.page {
	case model.PageDashboard, model.PageReminders:
		return len(m.cfg.Tasks.List())
	case model.PageAssignments:
		return len(m.cfg.Assignments.List())
	case model.PageCourses:
		return len(m.cfg.Courses.List())
	}
	return 0
}

// selectedTask returns the daily task under the cursor.
func (m *Model) selectedTask() (model.DailyTask, bool) {
	if m.page != model.PageDashboard && m.page != model.PageReminders {
		return model.DailyTask{}, false
	}
	tasks := m.cfg.Tasks.List()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return model.DailyTask{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) toggleTask() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if _, err := m.cfg.Tasks.Toggle(task.ID); err != nil {
		m.err = err
		return
	}
	m.checkWrite(m.cfg.Tasks.LastWriteErr())
}

func (m *Model) deleteTask() {
	if m.page != model.PageReminders {
		return
	}
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.cfg.Tasks.Delete(task.ID); err != nil {
		m.err = err
		return
	}
	m.checkWrite(m.cfg.Tasks.LastWriteErr())
	if n := m.listLen(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	m.setMessage("Deleted "+task.Text, 2*time.Second)
}

// reload re-reads every slice from storage.
func (m *Model) reload() {
	for _, r := range []storage.Reloader{
		m.cfg.Theme,
		m.cfg.Page,
		m.cfg.Assignments,
		m.cfg.Courses,
		m.cfg.Schedule,
		m.cfg.Tasks,
	} {
		r.Reload()
	}
	m.applyTheme()
	if n := m.listLen(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.now = m.cfg.Now()
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(m.cfg.Theme.Get())
	m.help.Styles.ShortKey = m.styles.Title
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Title
	m.help.Styles.FullDesc = m.styles.Muted
}

// checkWrite surfaces a write the storage rejected. The change stays in
// memory for the rest of the session.
func (m *Model) checkWrite(err error) {
	if err != nil {
		m.err = fmt.Errorf("not saved: %w", err)
		return
	}
	m.err = nil
}

// setMessage sets a temporary message.
func (m *Model) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now.Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard TUI.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
