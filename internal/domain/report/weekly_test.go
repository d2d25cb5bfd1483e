package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildWeekly(t *testing.T) {
	logs := mocks.NewMemoryLogStore()
	clk := clock.NewFake(time.Date(2026, time.August, 24, 21, 0, 0, 0, time.Local))
	ctx := context.Background()

	// A full week of in-window runs.
	for daysAgo := 0; daysAgo < 7; daysAgo++ {
		day := clk.Now().AddDate(0, 0, -daysAgo)
		ts := time.Date(day.Year(), day.Month(), day.Day(), 6, 40, 0, 0, day.Location())
		err := logs.Append(ctx, &tracking.LogRecord{
			ID:         uuid.NewString(),
			Date:       day.Format(clock.DateFormat),
			ActivityID: "run",
			Minutes:    40,
			Timestamp:  ts,
		})
		require.NoError(t, err)
	}

	engine := insight.NewEngine(logs, clk, insight.DefaultWindowDays, nil)
	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	builder := report.NewBuilder(engine, calc, clk, nil)

	weekly, err := builder.Build(ctx, []schedule.Activity{runActivity})
	require.NoError(t, err)

	require.Equal(t, "2026-08-24", weekly.WeekEnding)
	require.Equal(t, schedule.DaySoldier, weekly.DayType)
	require.Len(t, weekly.DailyLogs, 7)

	require.Equal(t, 7, weekly.Summary.Streaks["run"])
	require.Equal(t, 100, weekly.Summary.CompletionRate)
	require.Equal(t, 0, weekly.Summary.TotalVariance)
	require.Equal(t, 2800, weekly.Summary.TotalCalories)

	codes := make([]string, 0, len(weekly.Summary.Insights))
	for _, in := range weekly.Summary.Insights {
		codes = append(codes, in.Code)
	}
	require.Contains(t, codes, "consistency_mastery")
	require.Contains(t, codes, "weekly_performance")
	require.Empty(t, weekly.Summary.Deviations)
}

func TestBuildWeeklyEmptyHistory(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, time.August, 24, 21, 0, 0, 0, time.Local))
	logs := mocks.NewMemoryLogStore()

	engine := insight.NewEngine(logs, clk, insight.DefaultWindowDays, nil)
	calc := streak.NewCalculator(logs, clk, streak.DefaultScanBound, nil)
	builder := report.NewBuilder(engine, calc, clk, nil)

	weekly, err := builder.Build(context.Background(), []schedule.Activity{runActivity, gymActivity})
	require.NoError(t, err)

	require.Equal(t, 0, weekly.Summary.CompletionRate)
	require.Equal(t, -7*(40+60), weekly.Summary.TotalVariance)
	// Every activity-day is a full miss.
	require.Len(t, weekly.Summary.Deviations, 2)
}
