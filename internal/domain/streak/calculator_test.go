package streak_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var runActivity = schedule.Activity{
	ID:             "run",
	Name:           "Run",
	PlannedMinutes: 40,
	CalPerMinute:   10,
	Window:         schedule.TimeWindow{Start: 6*60 + 30, End: 7*60 + 10},
}

func fakeClock() *clock.Fake {
	return clock.NewFake(time.Date(2026, time.August, 24, 9, 30, 0, 0, time.Local))
}

// seedDay appends a record daysAgo days back, timestamped minuteOfDay
// minutes into that day.
func seedDay(t *testing.T, logs *mocks.MemoryLogStore, clk *clock.Fake, daysAgo, minutes, minuteOfDay int, history bool) {
	t.Helper()
	day := clk.Now().AddDate(0, 0, -daysAgo)
	ts := time.Date(day.Year(), day.Month(), day.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, day.Location())
	err := logs.Append(context.Background(), &tracking.LogRecord{
		ID:         uuid.NewString(),
		Date:       day.Format(clock.DateFormat),
		ActivityID: "run",
		Minutes:    minutes,
		Timestamp:  ts,
		IsHistory:  history,
	})
	require.NoError(t, err)
}

func TestComputeCountsConsecutiveDays(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	for daysAgo := 0; daysAgo < 5; daysAgo++ {
		seedDay(t, logs, clk, daysAgo, 40, 6*60+40, false)
	}
	// Day 5 missing, day 6 qualifying again: must not be reached.
	seedDay(t, logs, clk, 6, 40, 6*60+40, false)

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestComputeTodayPendingKeepsStreak(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	for daysAgo := 1; daysAgo <= 3; daysAgo++ {
		seedDay(t, logs, clk, daysAgo, 40, 6*60+40, false)
	}

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestComputeGapBreaksStreak(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	seedDay(t, logs, clk, 0, 40, 6*60+40, false)
	seedDay(t, logs, clk, 1, 40, 6*60+40, false)
	seedDay(t, logs, clk, 3, 40, 6*60+40, false)

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestComputeHistoryRecordsDoNotCount(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	seedDay(t, logs, clk, 0, 40, 6*60+40, false)
	seedDay(t, logs, clk, 1, 40, 6*60+40, true)
	seedDay(t, logs, clk, 2, 40, 6*60+40, false)

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestComputeRequiresInWindowEvidence(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	// Enough minutes, but stamped at 09:00, outside 06:30-07:10.
	seedDay(t, logs, clk, 0, 40, 9*60, false)

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestComputeCompletionThreshold(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	// 31 of 40 planned minutes is below the 80% threshold.
	seedDay(t, logs, clk, 0, 31, 6*60+40, false)

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	seedDay(t, logs, clk, 0, 1, 6*60+45, false)
	count, err = calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestComputeRespectsScanBound(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	for daysAgo := 0; daysAgo < 10; daysAgo++ {
		seedDay(t, logs, clk, daysAgo, 40, 6*60+40, false)
	}

	calc := streak.NewCalculator(logs, clk, 5, nil)
	count, err := calc.Compute(context.Background(), runActivity)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestComputeAllIndependentStreaks(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := fakeClock()
	seedDay(t, logs, clk, 0, 40, 6*60+40, false)
	seedDay(t, logs, clk, 1, 40, 6*60+40, false)

	gym := schedule.Activity{
		ID:             "gym",
		Name:           "Gym",
		PlannedMinutes: 60,
		Window:         schedule.TimeWindow{Start: 18*60 + 30, End: 19*60 + 30},
	}

	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	streaks, err := calc.ComputeAll(context.Background(), []schedule.Activity{runActivity, gym})
	require.NoError(t, err)
	require.Equal(t, 2, streaks["run"])
	require.Equal(t, 0, streaks["gym"])
}

func TestComputeStoreError(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	logs.GetErr = errors.New("db gone")

	calc := streak.NewCalculator(logs, fakeClock(), streak.DefaultScanBound, nil)
	_, err := calc.Compute(context.Background(), runActivity)
	require.Error(t, err)
}
