// Package config provides centralized configuration for Studinest.
//
// Values are layered: built-in defaults, then the YAML config file, then
// STUDINEST_* environment variables (a .env file in the working directory
// is loaded into the environment first).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/parser"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// InMemoryPath selects a throwaway in-memory database.
const InMemoryPath = ":memory:"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Storage   StorageConfig   `yaml:"storage"`
	Clock     ClockConfig     `yaml:"clock"`
	Week      WeekConfig      `yaml:"week"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Seed      SeedConfig      `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Backend is "badger" or "sqlite".
	// Default: badger
	Backend string `yaml:"backend"`

	// Path is the database location. Empty uses the XDG data directory;
	// ":memory:" keeps everything in memory.
	Path string `yaml:"path"`

	// KeyPrefix is prepended to every slice name.
	// Default: "studinest-"
	KeyPrefix string `yaml:"key_prefix"`
}

// ClockConfig holds the refresh clock configuration.
type ClockConfig struct {
	// TickInterval is how often time-derived views refresh.
	// Default: 1m
	TickInterval time.Duration `yaml:"tick_interval"`
}

// WeekConfig holds calendar display configuration.
type WeekConfig struct {
	// Start is the first day shown in the week view.
	// Default: Monday
	Start string `yaml:"start"`
}

// DashboardConfig holds dashboard configuration.
type DashboardConfig struct {
	// UpcomingLimit is how many upcoming assignments the dashboard lists.
	// Default: 3
	UpcomingLimit int `yaml:"upcoming_limit"`
}

// SeedConfig controls first-run data.
type SeedConfig struct {
	// Sample fills empty storage with sample records.
	// Default: true
	Sample bool `yaml:"sample"`
}

// LogConfig controls diagnostics on stderr. --debug overrides both.
type LogConfig struct {
	// Level is debug, info, warn or error.
	// Default: warn
	Level string `yaml:"level"`

	// Format is text or json.
	// Default: text
	Format string `yaml:"format"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			Backend:   BackendBadger,
			KeyPrefix: "studinest-",
		},
		Clock: ClockConfig{
			TickInterval: time.Minute,
		},
		Week: WeekConfig{
			Start: "Monday",
		},
		Dashboard: DashboardConfig{
			UpcomingLimit: 3,
		},
		Seed: SeedConfig{
			Sample: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default config file path following XDG spec.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "studinest", "config.yaml")
}

// Load builds the configuration. An empty path reads DefaultConfigPath if
// it exists; an explicit path must exist.
func Load(path string) (*RuntimeConfig, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}

	cfg := DefaultRuntimeConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads KEY=VALUE pairs into the environment without
// overriding variables that are already set. A missing file is fine.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *RuntimeConfig) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Storage configuration
	if v := os.Getenv("STUDINEST_DATABASE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("STUDINEST_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("STUDINEST_KEY_PREFIX"); v != "" {
		c.Storage.KeyPrefix = v
	}

	// Clock configuration
	if v := os.Getenv("STUDINEST_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Clock.TickInterval = d
		}
	}

	// Display configuration
	if v := os.Getenv("STUDINEST_WEEK_START"); v != "" {
		c.Week.Start = v
	}
	if v := os.Getenv("STUDINEST_UPCOMING_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Dashboard.UpcomingLimit = n
		}
	}

	if v := os.Getenv("STUDINEST_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("STUDINEST_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	if v := os.Getenv("STUDINEST_SAMPLE_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Seed.Sample = b
		}
	}
}

// Validate checks values that cannot be corrected silently.
func (c *RuntimeConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendBadger, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (use %s or %s)", c.Storage.Backend, BackendBadger, BackendSQLite)
	}
	if c.Clock.TickInterval < time.Second {
		return fmt.Errorf("clock.tick_interval must be at least 1s, got %s", c.Clock.TickInterval)
	}
	if c.Dashboard.UpcomingLimit < 0 {
		return fmt.Errorf("dashboard.upcoming_limit must not be negative")
	}
	if _, err := c.WeekStart(); err != nil {
		return fmt.Errorf("week.start: %w", err)
	}
	if _, err := c.Logging(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Logging returns the logger configuration for the log section.
func (c *RuntimeConfig) Logging() (logging.Config, error) {
	return logging.ConfigFor(c.Log.Level, c.Log.Format)
}

// WeekStart returns the configured first day of the week.
func (c *RuntimeConfig) WeekStart() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.Week.Start)) {
	case "", "today", "tomorrow":
		return 0, parser.NewWeekdayError(c.Week.Start)
	}
	return parser.ParseWeekday(c.Week.Start, time.Time{})
}

// InMemory reports whether the storage path selects an in-memory database.
func (c *RuntimeConfig) InMemory() bool {
	return c.Storage.Path == InMemoryPath
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
