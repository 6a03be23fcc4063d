package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores slots in a single key/value table. Writes go through
// INSERT OR REPLACE, so each slot update is atomic on its own.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{
		path: path,
	}
}

func (b *SQLiteBackend) Init() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	b.db = db

	if _, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create slots table: %w", err)
	}

	return nil
}

func (b *SQLiteBackend) Load() error {
	if b.db != nil {
		return nil
	}

	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'quitlog init' first")
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	b.db = db

	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	if b.db == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	var value []byte
	err := b.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, true, nil
}

func (b *SQLiteBackend) Set(key string, value []byte) error {
	if b.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := b.db.Exec("INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) GetConfigPath() string {
	return b.path
}

// GetDB exposes the handle for diagnostics (doctor).
func (b *SQLiteBackend) GetDB() *sql.DB {
	return b.db
}
