// Package store persists answer sequences in a local SQLite database so an
// assessment abandoned mid-way can be resumed in a later run.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS answer_sets (
	user_key   TEXT NOT NULL,
	instrument TEXT NOT NULL,
	session_id TEXT NOT NULL DEFAULT '',
	answers    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (user_key, instrument)
);
`

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a Store connected to the SQLite database at dsn. It applies
// recommended pragmas and creates the schema when missing.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Answers returns the answer-sequence repository backed by this store.
func (s *Store) Answers() *AnswerRepo {
	return &AnswerRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDataDir resolves the data directory in priority order:
// 1. PERSONA_DATA environment variable
// 2. $XDG_DATA_HOME/persona
// 3. ~/.local/share/persona
func DefaultDataDir() (string, error) {
	if d := os.Getenv("PERSONA_DATA"); d != "" {
		return d, EnsureDir(d)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	d := filepath.Join(dataHome, "persona")
	return d, EnsureDir(d)
}

// EnsureDir creates the directory if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
