package insight

import (
	"context"

	"github.com/daybudget/daybudget/internal/domain/tracking"
)

// LogRepository is the slice of the log store the engine needs.
type LogRepository interface {
	GetForDate(ctx context.Context, date string) ([]tracking.LogRecord, error)
}

// AchievementRepository persists awarded badge keys so achievements are
// emitted at most once.
type AchievementRepository interface {
	IsAwarded(ctx context.Context, key string) (bool, error)
	Award(ctx context.Context, achievement *Achievement) error
	List(ctx context.Context) ([]Achievement, error)
}
