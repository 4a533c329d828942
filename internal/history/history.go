// Package history records intent resolutions in a per-workspace SQLite
// database so recent lookups can be recalled and filtered.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mlanders/sextant/internal/paths"
)

// DB is the resolution history database handle.
type DB struct {
	db *sql.DB
}

// Record is one recorded resolution.
type Record struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent"`
	Input     string    `json:"input,omitempty"`
	Matches   int       `json:"matches"`
	TopMatch  string    `json:"top_match,omitempty"`
}

const schema = `
CREATE TABLE IF NOT EXISTS resolutions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ts TEXT NOT NULL,
	intent TEXT NOT NULL,
	input TEXT NOT NULL DEFAULT '',
	matches INTEGER NOT NULL,
	top_match TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_resolutions_ts ON resolutions(ts);
CREATE INDEX IF NOT EXISTS idx_resolutions_intent ON resolutions(intent);
`

// Open opens or creates the history database for a workspace.
func Open(workspacePath string) (*DB, error) {
	if err := os.MkdirAll(paths.Metadata(workspacePath), 0755); err != nil {
		return nil, fmt.Errorf("create metadata directory: %w", err)
	}

	db, err := sql.Open("sqlite", paths.History(workspacePath))
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Append records one resolution. A zero timestamp defaults to now.
func (d *DB) Append(rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	_, err := d.db.Exec(
		`INSERT INTO resolutions (ts, intent, input, matches, top_match) VALUES (?, ?, ?, ?, ?)`,
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		rec.Intent, rec.Input, rec.Matches, rec.TopMatch,
	)
	if err != nil {
		return fmt.Errorf("append resolution: %w", err)
	}
	return nil
}

// Recent returns the most recent resolutions, newest first.
func (d *DB) Recent(limit int) ([]Record, error) {
	return d.query(
		`SELECT id, ts, intent, input, matches, top_match FROM resolutions ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// RecentForIntent returns the most recent resolutions of one intent,
// newest first.
func (d *DB) RecentForIntent(intent string, limit int) ([]Record, error) {
	return d.query(
		`SELECT id, ts, intent, input, matches, top_match FROM resolutions WHERE intent = ? ORDER BY id DESC LIMIT ?`,
		intent, limit,
	)
}

func (d *DB) query(q string, args ...interface{}) ([]Record, error) {
	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.Intent, &rec.Input, &rec.Matches, &rec.TopMatch); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if parsed, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
			rec.Timestamp = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history rows: %w", err)
	}

	return records, nil
}
