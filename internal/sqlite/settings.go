package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/repository"
)

// catalogKey is the settings row holding a customized catalog.
const catalogKey = "catalog"

// SettingsRepository implements tracking.SettingsRepository for SQLite.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// LoadCatalog returns the customized catalog, or repository.ErrNotFound
// when none has been saved.
func (r *SettingsRepository) LoadCatalog(ctx context.Context) ([]schedule.Activity, error) {
	value, err := r.load(ctx, catalogKey)
	if err != nil {
		return nil, err
	}

	var activities []schedule.Activity
	if err := json.Unmarshal([]byte(value), &activities); err != nil {
		return nil, fmt.Errorf("failed to decode stored catalog: %w", err)
	}
	return activities, nil
}

// SaveCatalog replaces the customized catalog.
func (r *SettingsRepository) SaveCatalog(ctx context.Context, activities []schedule.Activity) error {
	data, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return r.save(ctx, catalogKey, string(data))
}

// LoadFlag returns the stored value for a named flag, or the fallback when
// the flag has never been set.
func (r *SettingsRepository) LoadFlag(ctx context.Context, name, fallback string) (string, error) {
	value, err := r.load(ctx, "flag:"+name)
	if err != nil {
		if err == repository.ErrNotFound {
			return fallback, nil
		}
		return "", err
	}
	return value, nil
}

// SaveFlag stores a named flag value.
func (r *SettingsRepository) SaveFlag(ctx context.Context, name, value string) error {
	return r.save(ctx, "flag:"+name, value)
}

func (r *SettingsRepository) load(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading setting %s: %v", repository.ErrStorageUnavailable, key, err)
	}
	return value, nil
}

func (r *SettingsRepository) save(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: writing setting %s: %v", repository.ErrStorageUnavailable, key, err)
	}
	return nil
}
