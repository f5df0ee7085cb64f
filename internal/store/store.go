package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Collection keys for the persisted snapshots.
const (
	KeyTasks       = "tasks"
	KeyGoals       = "goals"
	KeySettings    = "settings"
	KeyAnalytics   = "analytics"
	KeyStudyGroups = "studyGroups"
	KeyNotes       = "notes"
	KeyHabits      = "habits"
	KeyFocusStats  = "focusStats"
)

// Store persists whole-collection JSON snapshots in a local sqlite file,
// keyed by logical collection name. Absence of a key means "use defaults",
// not an error.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the snapshot database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Load returns the snapshot stored under key, or (nil, nil) when the key has
// never been saved.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM snapshots WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return []byte(value), nil
}

// Save upserts the snapshot for key. Writes are whole-state replacements, so
// no transactionality beyond the single statement is needed.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes a snapshot. Loading the key afterwards yields defaults.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
