package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/repository"
)

// AchievementRepository implements insight.AchievementRepository for SQLite.
type AchievementRepository struct {
	db *DB
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// IsAwarded reports whether a badge key has already been persisted.
func (r *AchievementRepository) IsAwarded(ctx context.Context, key string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM achievements WHERE key = ?`, key).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: checking achievement %s: %v", repository.ErrStorageUnavailable, key, err)
	}
	return count > 0, nil
}

// Award persists a newly earned badge. Re-awarding an existing key is
// treated as already done, not an error.
func (r *AchievementRepository) Award(ctx context.Context, achievement *insight.Achievement) error {
	query := `
		INSERT INTO achievements (id, key, type, activity_id, value, message, date, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		achievement.ID,
		achievement.Key,
		achievement.Type,
		achievement.ActivityID,
		achievement.Value,
		achievement.Message,
		achievement.Date,
		achievement.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("%w: awarding achievement %s: %v", repository.ErrStorageUnavailable, achievement.Key, err)
	}
	return nil
}

// List returns all awarded achievements, oldest first.
func (r *AchievementRepository) List(ctx context.Context) ([]insight.Achievement, error) {
	query := `
		SELECT id, key, type, activity_id, value, message, date, timestamp
		FROM achievements
		ORDER BY timestamp ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing achievements: %v", repository.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var achievements []insight.Achievement
	for rows.Next() {
		var ach insight.Achievement
		var stamp string
		if err := rows.Scan(&ach.ID, &ach.Key, &ach.Type, &ach.ActivityID, &ach.Value, &ach.Message, &ach.Date, &stamp); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse achievement timestamp %q: %w", stamp, err)
		}
		ach.Timestamp = ts.Local()
		achievements = append(achievements, ach)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievement rows: %w", err)
	}
	return achievements, nil
}
