package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

// SQLiteMedium implements Medium on a single-table SQLite database.
// Unlike Badger, the file may be opened by several processes at once.
type SQLiteMedium struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates a SQLite medium. Use ":memory:" for an
// in-memory database.
func OpenSQLite(path string) (*SQLiteMedium, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	m := &SQLiteMedium{db: db, path: path}
	if err := m.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return m, nil
}

func (m *SQLiteMedium) initialize() error {
	_, err := m.db.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`)
	return err
}

// Path returns the database file path.
func (m *SQLiteMedium) Path() string {
	return m.path
}

// Get retrieves the raw bytes stored under key.
func (m *SQLiteMedium) Get(key string) ([]byte, error) {
	var value []byte
	err := m.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select key: %w", err)
	}
	return value, nil
}

// Set stores raw bytes under key, replacing any previous value.
func (m *SQLiteMedium) Set(key string, data []byte) error {
	_, err := m.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, data,
	)
	if err != nil {
		return fmt.Errorf("upsert key: %w", err)
	}
	return nil
}

// Delete removes a key.
func (m *SQLiteMedium) Delete(key string) error {
	if _, err := m.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}

// ListByPrefix retrieves all keys with the given prefix in key order.
func (m *SQLiteMedium) ListByPrefix(prefix string) ([]string, error) {
	rows, err := m.db.Query(
		"SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key",
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database.
func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}

// DefaultSQLitePath returns the default SQLite database file following XDG spec.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, AppName, AppName+".db")
}
