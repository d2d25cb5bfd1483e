package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/repository"
)

// LogRepository implements the domain log store interfaces for SQLite.
type LogRepository struct {
	db *DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db}
}

// Append writes one record; the row is durable when this returns.
func (r *LogRepository) Append(ctx context.Context, rec *tracking.LogRecord) error {
	query := `
		INSERT INTO logs (id, date, activity_id, minutes, timestamp, is_history)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Date,
		rec.ActivityID,
		rec.Minutes,
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		boolToInt(rec.IsHistory),
	)
	if err != nil {
		return fmt.Errorf("%w: appending log: %v", repository.ErrStorageUnavailable, err)
	}
	return nil
}

// GetForDate returns all records for one calendar day in insertion order.
func (r *LogRepository) GetForDate(ctx context.Context, date string) ([]tracking.LogRecord, error) {
	query := `
		SELECT id, date, activity_id, minutes, timestamp, is_history
		FROM logs
		WHERE date = ?
		ORDER BY timestamp ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: reading logs for %s: %v", repository.ErrStorageUnavailable, date, err)
	}
	defer rows.Close()

	var records []tracking.LogRecord
	for rows.Next() {
		var rec tracking.LogRecord
		var stamp string
		var isHistory int
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.ActivityID, &rec.Minutes, &stamp, &isHistory); err != nil {
			return nil, fmt.Errorf("failed to scan log record: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log timestamp %q: %w", stamp, err)
		}
		rec.Timestamp = ts.Local()
		rec.IsHistory = isHistory != 0
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
