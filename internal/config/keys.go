package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Keys lists every settable key in display order.
func Keys() []string {
	return []string{
		"storage.backend",
		"storage.path",
		"storage.key_prefix",
		"clock.tick_interval",
		"week.start",
		"dashboard.upcoming_limit",
		"seed.sample",
		"log.level",
		"log.format",
	}
}

// Get returns the value of a dotted key as text.
func (c *RuntimeConfig) Get(key string) (string, error) {
	switch key {
	case "storage.backend":
		return c.Storage.Backend, nil
	case "storage.path":
		return c.Storage.Path, nil
	case "storage.key_prefix":
		return c.Storage.KeyPrefix, nil
	case "clock.tick_interval":
		return c.Clock.TickInterval.String(), nil
	case "week.start":
		return c.Week.Start, nil
	case "dashboard.upcoming_limit":
		return strconv.Itoa(c.Dashboard.UpcomingLimit), nil
	case "seed.sample":
		return strconv.FormatBool(c.Seed.Sample), nil
	case "log.level":
		return c.Log.Level, nil
	case "log.format":
		return c.Log.Format, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set parses value into the dotted key and validates the result. The
// config is left unchanged on error.
func (c *RuntimeConfig) Set(key, value string) error {
	next := *c

	switch key {
	case "storage.backend":
		next.Storage.Backend = strings.ToLower(value)
	case "storage.path":
		next.Storage.Path = value
	case "storage.key_prefix":
		next.Storage.KeyPrefix = value
	case "clock.tick_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		next.Clock.TickInterval = d
	case "week.start":
		next.Week.Start = value
	case "dashboard.upcoming_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number %q", value)
		}
		next.Dashboard.UpcomingLimit = n
	case "seed.sample":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		next.Seed.Sample = b
	case "log.level":
		next.Log.Level = strings.ToLower(value)
	case "log.format":
		next.Log.Format = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// LoadFile reads defaults plus the config file at path, ignoring the
// environment. A missing file yields the defaults.
func LoadFile(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if err := cfg.loadFile(path, false); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *RuntimeConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
