package tracking

import (
	"context"

	"github.com/daybudget/daybudget/internal/domain/schedule"
)

// LogRepository provides persistence for log records. Append must be
// durable before returning.
type LogRepository interface {
	Append(ctx context.Context, rec *LogRecord) error
	GetForDate(ctx context.Context, date string) ([]LogRecord, error)
}

// SettingsRepository stores the customized catalog and named flags.
// LoadCatalog returns repository.ErrNotFound when no customization exists.
type SettingsRepository interface {
	LoadCatalog(ctx context.Context) ([]schedule.Activity, error)
	SaveCatalog(ctx context.Context, activities []schedule.Activity) error
	LoadFlag(ctx context.Context, name, fallback string) (string, error)
	SaveFlag(ctx context.Context, name, value string) error
}

// Notifier delivers fire-and-forget user notifications. Failures are the
// notifier's problem; the service only decides when to call it.
type Notifier interface {
	Notify(ctx context.Context, title, body, icon string)
}
