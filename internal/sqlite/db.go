package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Busy timeout keeps the sweep goroutine and user actions from
	// tripping over each other on short write bursts.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Idempotent; runs at startup.
func (db *DB) RunMigrations() error {
	migration := `
-- Append-only per-day, per-activity minute records
CREATE TABLE IF NOT EXISTS logs (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    activity_id TEXT NOT NULL,
    minutes INTEGER NOT NULL CHECK(minutes > 0),
    timestamp TIMESTAMP NOT NULL,
    is_history INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);
CREATE INDEX IF NOT EXISTS idx_logs_activity ON logs(activity_id);

-- Key/value settings, including the customized catalog
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Awarded achievement badges; key is the de-dupe identity
CREATE TABLE IF NOT EXISTS achievements (
    id TEXT PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    type TEXT NOT NULL,
    activity_id TEXT,
    value INTEGER NOT NULL,
    message TEXT NOT NULL,
    date TEXT NOT NULL,
    timestamp TIMESTAMP NOT NULL
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
