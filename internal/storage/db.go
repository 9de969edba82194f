// Package storage provides the persistence layer for Studinest: durable
// key/value media, the typed Store that reads and writes state slices, and
// one repository per slice.
package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/studinest/internal/logging"
)

// AppName names the XDG data and config directories.
const AppName = "studinest"

// Planner state is six small JSON documents rewritten whole on every
// change, so the value log is kept small and compacted on close.
const (
	valueLogFileSize = 16 << 20
	gcDiscardRatio   = 0.5
	maxGCRounds      = 4
)

// DB is the badger-backed Medium and the default backend. Each slice key
// holds exactly one version of its document.
type DB struct {
	db   *badger.DB
	path string
}

// Options selects where the slices live.
type Options struct {
	// Path is the database directory. Empty keeps the slices in memory.
	Path string
	// InMemory keeps the slices in memory even when Path is set.
	InMemory bool
}

// DefaultPath returns $XDG_DATA_HOME/studinest/db.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens the slice database, creating the directory on first run.
func Open(opts Options) (*DB, error) {
	inMemory := opts.InMemory || opts.Path == ""

	var bopts badger.Options
	if inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o755); err != nil {
			return nil, err
		}
		bopts = badger.DefaultOptions(opts.Path).
			WithValueLogFileSize(valueLogFileSize)
	}
	bopts = bopts.
		WithNumVersionsToKeep(1).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, err
	}

	d := &DB{db: db}
	if !inMemory {
		d.path = opts.Path
	}
	return d, nil
}

// Close compacts the value log of an on-disk database, then closes it.
func (d *DB) Close() error {
	if d.path != "" {
		d.collectGarbage()
	}
	return d.db.Close()
}

// collectGarbage reclaims value log space left by overwritten slices.
// Failures only cost disk space and are logged at debug level.
func (d *DB) collectGarbage() {
	for i := 0; i < maxGCRounds; i++ {
		err := d.db.RunValueLogGC(gcDiscardRatio)
		if err == nil {
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) {
			logging.DebugLog("value log compaction stopped", logging.KeyPath, d.path, logging.KeyError, err)
		}
		return
	}
}

// Path returns the database directory, or "" when slices live in memory.
func (d *DB) Path() string {
	return d.path
}
