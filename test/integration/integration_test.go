package integration_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/notify"
	"github.com/daybudget/daybudget/internal/sqlite"
)

type stack struct {
	db      *sqlite.DB
	logs    *sqlite.LogRepository
	awards  *sqlite.AchievementRepository
	clock   *clock.Fake
	tracker *tracking.Service
	streaks *streak.Calculator
	awarder *insight.Awarder
	reports *report.Builder
}

func newStack(t *testing.T) *stack {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	logRepo := sqlite.NewLogRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	achievementRepo := sqlite.NewAchievementRepository(db)

	clk := clock.NewFake(time.Date(2026, time.August, 24, 6, 30, 0, 0, time.Local))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tracker := tracking.NewService(logRepo, settingsRepo, notify.Noop{}, clk, logger)
	streakCalc := streak.NewCalculator(logRepo, clk, streak.DefaultScanBound, logger)
	engine := insight.NewEngine(logRepo, clk, insight.DefaultWindowDays, logger)

	return &stack{
		db:      db,
		logs:    logRepo,
		awards:  achievementRepo,
		clock:   clk,
		tracker: tracker,
		streaks: streakCalc,
		awarder: insight.NewAwarder(achievementRepo, clk),
		reports: report.NewBuilder(engine, streakCalc, clk, logger),
	}
}

// seedRunDay writes a qualifying run record daysAgo days back, straight
// through the repository as if it had been logged live.
func seedRunDay(t *testing.T, s *stack, daysAgo int) {
	t.Helper()
	day := s.clock.Now().AddDate(0, 0, -daysAgo)
	ts := time.Date(day.Year(), day.Month(), day.Day(), 6, 40, 0, 0, day.Location())
	err := s.logs.Append(context.Background(), &tracking.LogRecord{
		ID:         uuid.NewString(),
		Date:       day.Format(clock.DateFormat),
		ActivityID: "run",
		Minutes:    40,
		Timestamp:  ts,
	})
	require.NoError(t, err)
}

func TestIntegration_StreakLifecycle(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	for daysAgo := 1; daysAgo <= 9; daysAgo++ {
		seedRunDay(t, s, daysAgo)
	}

	// Day ten is tracked live: timer from 06:30 to 07:09.
	require.NoError(t, s.tracker.StartTimer(ctx, "run"))
	s.clock.Set(time.Date(2026, time.August, 24, 7, 9, 0, 0, time.Local))
	rec, err := s.tracker.StopTimer(ctx, "run")
	require.NoError(t, err)
	require.Equal(t, 39, rec.Minutes)

	acts, err := s.tracker.Catalog(ctx)
	require.NoError(t, err)
	run, ok := schedule.Find(acts, "run")
	require.True(t, ok)

	count, err := s.streaks.Compute(ctx, run)
	require.NoError(t, err)
	require.Equal(t, 10, count)

	// The ten-day badge is earned once and persists across evaluations.
	streaks, err := s.streaks.ComputeAll(ctx, acts)
	require.NoError(t, err)
	minutes, err := s.tracker.MinutesToday(ctx)
	require.NoError(t, err)

	earned, err := s.awarder.Check(ctx, acts, streaks, minutes)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	require.Equal(t, "streak_10_run", earned[0].Key)

	earned, err = s.awarder.Check(ctx, acts, streaks, minutes)
	require.NoError(t, err)
	require.Empty(t, earned)

	awarded, err := s.awards.List(ctx)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
}

func TestIntegration_HistoryDoesNotExtendStreaks(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	_, err := s.tracker.LogHistory(ctx, "gym", 60)
	require.NoError(t, err)

	minutes, err := s.tracker.MinutesToday(ctx)
	require.NoError(t, err)
	require.Equal(t, 60, minutes["gym"])

	acts, err := s.tracker.Catalog(ctx)
	require.NoError(t, err)
	gym, ok := schedule.Find(acts, "gym")
	require.True(t, ok)

	count, err := s.streaks.Compute(ctx, gym)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestIntegration_WeeklyReport(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	for daysAgo := 0; daysAgo < 7; daysAgo++ {
		seedRunDay(t, s, daysAgo)
	}

	acts, err := s.tracker.Catalog(ctx)
	require.NoError(t, err)

	weekly, err := s.reports.Build(ctx, acts)
	require.NoError(t, err)
	require.Equal(t, "2026-08-24", weekly.WeekEnding)
	require.Len(t, weekly.DailyLogs, 7)
	require.Equal(t, 7, weekly.Summary.Streaks["run"])
}

func TestIntegration_OvernightSweep(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.clock.Set(time.Date(2026, time.August, 24, 23, 30, 0, 0, time.Local))
	require.NoError(t, s.tracker.StartTimer(ctx, "sleep"))

	s.clock.Set(time.Date(2026, time.August, 25, 6, 0, 0, 0, time.Local))
	stopped, err := s.tracker.SweepExpired(ctx)
	require.NoError(t, err)
	require.Len(t, stopped, 1)
	require.Equal(t, 390, stopped[0].Minutes)

	minutes, err := s.tracker.MinutesForDate(ctx, "2026-08-25")
	require.NoError(t, err)
	require.Equal(t, 390, minutes["sleep"])
}
