package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/streak"
)

// Weekly is the serializable export of the trailing week.
type Weekly struct {
	WeekEnding string               `json:"week_ending"`
	DayType    schedule.DayType     `json:"day_type"`
	DailyLogs  []insight.DaySummary `json:"daily_logs"`
	Summary    Summary              `json:"summary"`
}

// Summary is the aggregate block of a weekly report.
type Summary struct {
	TotalVariance  int                 `json:"total_variance"`
	TotalCalories  int                 `json:"total_calories"`
	CompletionRate int                 `json:"completion_rate"`
	Streaks        map[string]int      `json:"streaks"`
	Insights       []insight.Insight   `json:"insights"`
	Deviations     []insight.Deviation `json:"deviations"`
}

// Builder assembles weekly reports from the insight engine and the streak
// calculator.
type Builder struct {
	engine  *insight.Engine
	streaks *streak.Calculator
	clock   clock.Clock
	logger  *slog.Logger
}

// NewBuilder creates a weekly report builder.
func NewBuilder(engine *insight.Engine, streaks *streak.Calculator, clk clock.Clock, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{engine: engine, streaks: streaks, clock: clk, logger: logger}
}

// Build produces the report for the trailing window ending today.
func (b *Builder) Build(ctx context.Context, activities []schedule.Activity) (*Weekly, error) {
	window, err := b.engine.TrailingWindow(ctx, activities)
	if err != nil {
		return nil, fmt.Errorf("building trailing window: %w", err)
	}

	streaks, err := b.streaks.ComputeAll(ctx, activities)
	if err != nil {
		return nil, fmt.Errorf("computing streaks: %w", err)
	}

	insights, deviations := b.engine.Analyze(window, activities, streaks)

	summary := Summary{
		Streaks:    streaks,
		Insights:   insights,
		Deviations: deviations,
	}
	completedDays := 0
	for _, day := range window {
		for _, act := range day.Activities {
			summary.TotalVariance += act.Variance
			summary.TotalCalories += act.Calories
			if act.Completed {
				completedDays++
			}
		}
	}
	if days := len(window) * len(activities); days > 0 {
		summary.CompletionRate = roundPercent(completedDays, days)
	}

	return &Weekly{
		WeekEnding: b.clock.Today(),
		DayType:    schedule.DayTypeFor(b.clock.Now()),
		DailyLogs:  window,
		Summary:    summary,
	}, nil
}

func roundPercent(part, whole int) int {
	return int(float64(part)/float64(whole)*100 + 0.5)
}
