// Package storage persists the high-score table.
// Store uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies;
// FileStore keeps the table in a JSON file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/fixonz/malakainvadors/internal/engine"
)

// Store keeps high scores in a SQLite database. It is safe for concurrent
// use by several sessions.
type Store struct {
	db *sql.DB
}

var _ Maintainer = (*Store)(nil)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	// when several SSH sessions finish at once.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run. A zero At is stamped with the
// database's current time.
func (s *Store) SaveScore(entry engine.HighScore) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		name = "PLAYER"
	}

	var err error
	if entry.At.IsZero() {
		_, err = s.db.Exec(
			"INSERT INTO high_scores (name, score, level, difficulty) VALUES (?, ?, ?, ?)",
			name, entry.Score, entry.Level, entry.Difficulty,
		)
	} else {
		_, err = s.db.Exec(
			"INSERT INTO high_scores (name, score, level, difficulty, created_at) VALUES (?, ?, ?, ?, ?)",
			name, entry.Score, entry.Level, entry.Difficulty, entry.At.UTC().Format(sqliteTime),
		)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the best limit scores, highest first. Equal scores
// are ordered by insertion.
func (s *Store) TopScores(limit int) ([]engine.HighScore, error) {
	if limit <= 0 {
		limit = engine.MaxHighScores
	}

	rows, err := s.db.Query(
		`SELECT name, score, level, difficulty, created_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries := []engine.HighScore{}
	for rows.Next() {
		var e engine.HighScore
		var createdAt any
		if err := rows.Scan(&e.Name, &e.Score, &e.Level, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.At = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Maintainer is a score store that can report its size and be wiped.
type Maintainer interface {
	engine.ScoreStore
	Count() (int, error)
	Clear() error
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM high_scores").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	return n, nil
}

// Clear deletes every recorded score.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string, depending on how the
// driver returned the column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
