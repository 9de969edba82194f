// Package runtime provides application runtime context for Studinest.
package runtime

import (
	"fmt"
	"time"

	"github.com/manav03panchal/studinest/internal/config"
	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/metrics"
	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/seed"
	"github.com/manav03panchal/studinest/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Medium    storage.Medium
	Store     *storage.Store
	Recorder  *metrics.PrometheusRecorder
	Formatter *output.Formatter

	// MountReport is the state of every slice before the repositories
	// mounted. Mounting rewrites corrupt slices with their defaults.
	MountReport *storage.HealthReport

	// Repositories
	ThemeRepo      *storage.ThemeRepo
	PageRepo       *storage.PageRepo
	AssignmentRepo *storage.AssignmentRepo
	CourseRepo     *storage.CourseRepo
	ScheduleRepo   *storage.ScheduleRepo
	DailyTaskRepo  *storage.DailyTaskRepo

	// Debug mode
	Debug bool

	now    func() time.Time
	closed bool
}

// Options configures the runtime context.
type Options struct {
	Config    *config.RuntimeConfig
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Now overrides the wall clock. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Config:    config.DefaultRuntimeConfig(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context. Every repository is mounted, so each
// slice is written back to the medium once before New returns.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultRuntimeConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	medium, err := OpenMedium(cfg)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewPrometheusRecorder(nil)
	store := storage.NewStore(medium, storage.StoreOptions{
		Prefix:   cfg.Storage.KeyPrefix,
		Recorder: recorder,
		Now:      now,
	})

	report := storage.CheckIntegrity(store)
	if !report.Healthy {
		logging.Warn("corrupt slices will be replaced by defaults", logging.KeyCount, countUnhealthy(report))
	}

	data := seed.Empty()
	if cfg.Seed.Sample {
		data = seed.Sample(now())
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:         cfg,
		Medium:         medium,
		Store:          store,
		Recorder:       recorder,
		Formatter:      formatter,
		MountReport:    report,
		ThemeRepo:      storage.NewThemeRepo(store, data.Theme),
		PageRepo:       storage.NewPageRepo(store, data.Page),
		AssignmentRepo: storage.NewAssignmentRepo(store, data.Assignments),
		CourseRepo:     storage.NewCourseRepo(store, data.Courses),
		ScheduleRepo:   storage.NewScheduleRepo(store, data.Schedule),
		DailyTaskRepo:  storage.NewDailyTaskRepo(store, data.DailyTasks),
		Debug:          opts.Debug,
		now:            now,
	}, nil
}

// OpenMedium opens the storage backend named by cfg.
func OpenMedium(cfg *config.RuntimeConfig) (storage.Medium, error) {
	path := cfg.Storage.Path

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if path == "" {
			path = storage.DefaultSQLitePath()
		}
		m, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, openError(cfg.Storage.Backend, path, err)
		}
		return m, nil
	case config.BackendBadger, "":
		if path == "" {
			path = storage.DefaultPath()
		}
		db, err := storage.Open(storage.Options{
			Path:     path,
			InMemory: cfg.InMemory(),
		})
		if err != nil {
			return nil, openError(cfg.Storage.Backend, path, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func openError(backend, path string, err error) error {
	logging.Error("failed to open storage",
		logging.KeyBackend, backend,
		logging.KeyPath, path,
		logging.KeyError, err)
	return errors.NewSystemErrorWithOp("open", "cannot open "+backend+" storage at "+path,
		fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
}

func countUnhealthy(report *storage.HealthReport) int {
	n := 0
	for _, s := range report.Slices {
		if s.State == storage.SliceCorrupt || s.State == storage.SliceError {
			n++
		}
	}
	return n
}

// Now returns the current time from the context clock.
func (c *Context) Now() time.Time {
	return c.now()
}

// Repos returns every repository in mount order.
func (c *Context) Repos() []storage.Repo {
	return []storage.Repo{
		c.ThemeRepo,
		c.PageRepo,
		c.AssignmentRepo,
		c.CourseRepo,
		c.ScheduleRepo,
		c.DailyTaskRepo,
	}
}

// Reload re-reads every slice from the medium.
func (c *Context) Reload() {
	for _, r := range c.Repos() {
		r.Reload()
	}
}

// WriteErrors returns the failed writes still remembered by the repositories.
func (c *Context) WriteErrors() []error {
	var errs []error
	for _, r := range c.Repos() {
		if err := r.LastWriteErr(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Close closes the runtime context and releases resources. Only the first
// call closes the medium.
func (c *Context) Close() error {
	if c.closed || c.Medium == nil {
		return nil
	}
	c.closed = true
	return c.Medium.Close()
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}
