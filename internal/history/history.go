// Package history records completed batch runs in a SQLite log under the
// vault's .magpie directory.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded batch run.
type Entry struct {
	ID      int64     `json:"id"`
	Action  string    `json:"action"`
	Summary string    `json:"summary"`
	Files   int       `json:"files"`
	RanAt   time.Time `json:"ran_at"`
}

// Log is the history database handle.
type Log struct {
	db *sql.DB
}

// Open opens or creates the history log for a vault.
func Open(vaultPath string) (*Log, error) {
	dir := filepath.Join(vaultPath, ".magpie")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create .magpie directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	l := &Log{db: db}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Log) initialize() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action TEXT NOT NULL,
			summary TEXT NOT NULL,
			file_count INTEGER NOT NULL,
			ran_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("initialize history schema: %w", err)
	}
	return nil
}

// Record appends one batch run to the log.
func (l *Log) Record(action, summary string, files int) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (action, summary, file_count, ran_at) VALUES (?, ?, ?, ?)`,
		action, summary, files, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT id, action, summary, file_count, ran_at FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ranAt string
		if err := rows.Scan(&e.ID, &e.Action, &e.Summary, &e.Files, &ranAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ranAt); parseErr == nil {
			e.RanAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database handle.
func (l *Log) Close() error {
	return l.db.Close()
}
