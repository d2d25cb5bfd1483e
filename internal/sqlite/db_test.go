package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"logs", "settings", "achievements"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestMigrationsIdempotent verifies a second run is harmless
func TestMigrationsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestLogsRejectNonPositiveMinutes verifies the minutes check constraint
func TestLogsRejectNonPositiveMinutes(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO logs (id, date, activity_id, minutes, timestamp, is_history) VALUES (?, ?, ?, ?, ?, ?)`,
		"l1", "2026-08-28", "run", 0, "2026-08-28T06:45:00Z", 0)
	require.Error(t, err)
}
