// Package sqlite persists session metadata, currently the recent-project
// history, in a SQLite database under the codify data directory.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS recent_projects (
	id          TEXT PRIMARY KEY,
	path        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	last_opened TIMESTAMP NOT NULL
);
`

// SessionStore is a SQLite-backed implementation of driven.SessionStore.
type SessionStore struct {
	db   *sql.DB
	path string
}

// NewSessionStore creates a new SQLite session store at the specified
// data directory. If dataDir is empty, defaults to ~/.codify/data/session.db.
func NewSessionStore(dataDir string) (*SessionStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".codify", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "session.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SessionStore{db: db, path: dbPath}, nil
}

// Touch inserts or refreshes the entry for a project path.
func (s *SessionStore) Touch(path, name string) error {
	_, err := s.db.Exec(`
		INSERT INTO recent_projects (id, path, name, last_opened)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			last_opened = excluded.last_opened`,
		uuid.NewString(), path, name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording recent project: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recent first.
func (s *SessionStore) Recent(limit int) ([]driven.RecentProject, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT id, path, name, last_opened
		FROM recent_projects
		ORDER BY last_opened DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent projects: %w", err)
	}
	defer rows.Close()

	var out []driven.RecentProject
	for rows.Next() {
		var entry driven.RecentProject
		if err := rows.Scan(&entry.ID, &entry.Path, &entry.Name, &entry.LastOpened); err != nil {
			return nil, fmt.Errorf("scanning recent project: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading recent projects: %w", err)
	}
	return out, nil
}

// Forget removes the entry for a path, if present.
func (s *SessionStore) Forget(path string) error {
	if _, err := s.db.Exec(`DELETE FROM recent_projects WHERE path = ?`, path); err != nil {
		return fmt.Errorf("forgetting recent project: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SessionStore) Path() string {
	return s.path
}
