package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEveryKey(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	want := map[string]string{
		"storage.backend":          "badger",
		"storage.path":             "",
		"storage.key_prefix":       "studinest-",
		"clock.tick_interval":      "1m0s",
		"week.start":               "Monday",
		"dashboard.upcoming_limit": "3",
		"seed.sample":              "true",
		"log.level":                "warn",
		"log.format":               "text",
	}

	for _, key := range Keys() {
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("Get(%q): %v", key, err)
		}
		if got != want[key] {
			t.Errorf("Get(%q) = %q, want %q", key, got, want[key])
		}
	}

	if _, err := cfg.Get("notify.idle"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSet(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if err := cfg.Set("clock.tick_interval", "30s"); err != nil {
		t.Fatalf("Set tick: %v", err)
	}
	if cfg.Clock.TickInterval != 30*time.Second {
		t.Errorf("expected 30s, got %v", cfg.Clock.TickInterval)
	}

	if err := cfg.Set("storage.backend", "SQLite"); err != nil {
		t.Fatalf("Set backend: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("expected sqlite, got %q", cfg.Storage.Backend)
	}

	if err := cfg.Set("seed.sample", "false"); err != nil {
		t.Fatalf("Set sample: %v", err)
	}
	if cfg.Seed.Sample {
		t.Error("expected sample data off")
	}

	if err := cfg.Set("log.level", "DEBUG"); err != nil {
		t.Fatalf("Set log level: %v", err)
	}
	logCfg, err := cfg.Logging()
	if err != nil {
		t.Fatalf("Logging: %v", err)
	}
	if logCfg.Level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", logCfg.Level)
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"clock.tick_interval", "soon"},
		{"clock.tick_interval", "10ms"},
		{"dashboard.upcoming_limit", "-1"},
		{"dashboard.upcoming_limit", "three"},
		{"week.start", "someday"},
		{"storage.backend", "leveldb"},
		{"seed.sample", "maybe"},
		{"log.level", "loud"},
		{"log.format", "xml"},
		{"theme", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultRuntimeConfig()
			if err := cfg.Set(tt.key, tt.value); err == nil {
				t.Fatal("expected error")
			}
			if *cfg != *DefaultRuntimeConfig() {
				t.Error("config changed after a rejected Set")
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("STUDINEST_UPCOMING_LIMIT", "9")

	cfg := DefaultRuntimeConfig()
	if err := cfg.Set("week.start", "Sunday"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("clock.tick_interval", "2m"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Week.Start != "Sunday" {
		t.Errorf("expected Sunday, got %q", loaded.Week.Start)
	}
	if loaded.Clock.TickInterval != 2*time.Minute {
		t.Errorf("expected 2m, got %v", loaded.Clock.TickInterval)
	}
	// LoadFile ignores the environment
	if loaded.Dashboard.UpcomingLimit != 3 {
		t.Errorf("expected file value 3, got %d", loaded.Dashboard.UpcomingLimit)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *cfg != *DefaultRuntimeConfig() {
		t.Error("expected defaults for a missing file")
	}
}
