package mocks

import (
	"context"
	"sync"

	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/stretchr/testify/mock"
)

// LogRepository is a mock for the domain log store interfaces.
type LogRepository struct {
	mock.Mock
}

func (m *LogRepository) Append(ctx context.Context, rec *tracking.LogRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *LogRepository) GetForDate(ctx context.Context, date string) ([]tracking.LogRecord, error) {
	args := m.Called(ctx, date)
	if records, ok := args.Get(0).([]tracking.LogRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

// SettingsRepository is a mock for tracking.SettingsRepository.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) LoadCatalog(ctx context.Context) ([]schedule.Activity, error) {
	args := m.Called(ctx)
	if acts, ok := args.Get(0).([]schedule.Activity); ok {
		return acts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SettingsRepository) SaveCatalog(ctx context.Context, activities []schedule.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *SettingsRepository) LoadFlag(ctx context.Context, name, fallback string) (string, error) {
	args := m.Called(ctx, name, fallback)
	return args.String(0), args.Error(1)
}

func (m *SettingsRepository) SaveFlag(ctx context.Context, name, value string) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

// AchievementRepository is a mock for insight.AchievementRepository.
type AchievementRepository struct {
	mock.Mock
}

func (m *AchievementRepository) IsAwarded(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *AchievementRepository) Award(ctx context.Context, achievement *insight.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

func (m *AchievementRepository) List(ctx context.Context) ([]insight.Achievement, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]insight.Achievement); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Notification captures one Notify call.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Notifier records notifications for assertions.
type Notifier struct {
	mu   sync.Mutex
	Sent []Notification
}

func (n *Notifier) Notify(ctx context.Context, title, body, icon string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, Notification{Title: title, Body: body, Icon: icon})
}

// Titles returns the titles of all recorded notifications.
func (n *Notifier) Titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	titles := make([]string, 0, len(n.Sent))
	for _, sent := range n.Sent {
		titles = append(titles, sent.Title)
	}
	return titles
}
