package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/config"
	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/storage"
	"github.com/manav03panchal/studinest/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard with five pages: dashboard,
assignments, courses, schedule and reminders.

The clock refreshes every clock.tick_interval, and changes made by other
studinest commands while the dashboard is open are picked up automatically.

Keyboard Controls:
  tab / shift+tab - Next / previous page
  1-5             - Jump to a page
  j / k           - Move the cursor
  space           - Toggle the selected reminder
  d               - Delete the selected reminder (reminders page)
  t               - Toggle light / dark theme
  r               - Refresh data
  q               - Quit dashboard

Examples:
  studinest dashboard
  studinest dash
  studinest tui`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	weekStart, err := ctx.Config.WeekStart()
	if err != nil {
		return err
	}

	// Configure the dashboard
	cfg := tui.Config{
		Theme:         ctx.ThemeRepo,
		Page:          ctx.PageRepo,
		Assignments:   ctx.AssignmentRepo,
		Courses:       ctx.CourseRepo,
		Schedule:      ctx.ScheduleRepo,
		Tasks:         ctx.DailyTaskRepo,
		Now:           ctx.Now,
		TickInterval:  ctx.Config.Clock.TickInterval,
		UpcomingLimit: ctx.Config.Dashboard.UpcomingLimit,
		WeekStart:     weekStart,
	}

	if watcher := watchStorage(); watcher != nil {
		defer watcher.Close()
		cfg.Changes = watcher.Changes()
	}

	// Run the TUI dashboard
	return tui.Run(cfg)
}

// watchStorage watches the on-disk database, or returns nil when storage
// lives in memory or cannot be watched.
func watchStorage() *tui.StorageWatcher {
	if ctx.Config.InMemory() {
		return nil
	}

	var (
		path  string
		isDir bool
	)
	switch m := ctx.Medium.(type) {
	case *storage.DB:
		path, isDir = m.Path(), true
	case *storage.SQLiteMedium:
		path = m.Path()
	}
	if path == "" || path == config.InMemoryPath {
		return nil
	}

	watcher, err := tui.NewStorageWatcher(path, isDir)
	if err != nil {
		logging.FromContext(sessionCtx).Warn("storage changes will not be picked up",
			logging.KeyPath, path,
			logging.KeyError, err)
		return nil
	}
	return watcher
}
