// Package history persists chat turns to a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Turn is one recorded prompt/answer exchange.
type Turn struct {
	ID      int64
	Prompt  string
	Answer  string
	Model   string
	AskedAt time.Time
}

// Store wraps the SQLite chat history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path,
// creating parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS turns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt TEXT NOT NULL,
			answer TEXT NOT NULL,
			model TEXT NOT NULL,
			asked_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_turns_asked_at ON turns(asked_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Record appends a completed turn.
func (s *Store) Record(prompt, answer, model string) error {
	_, err := s.db.Exec(
		"INSERT INTO turns (prompt, answer, model, asked_at) VALUES (?, ?, ?, ?)",
		prompt, answer, model, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording turn: %w", err)
	}
	return nil
}

// Recent returns up to limit turns, newest first.
// A non-positive limit returns all turns.
func (s *Store) Recent(limit int) ([]Turn, error) {
	query := "SELECT id, prompt, answer, model, asked_at FROM turns ORDER BY asked_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var askedAt int64
		if err := rows.Scan(&t.ID, &t.Prompt, &t.Answer, &t.Model, &askedAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		t.AskedAt = time.Unix(askedAt, 0)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}

	return turns, nil
}

// Count returns the number of recorded turns.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM turns").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting turns: %w", err)
	}
	return n, nil
}
