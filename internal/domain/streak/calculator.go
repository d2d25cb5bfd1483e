package streak

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/tracking"
)

// DefaultScanBound caps the backward walk so it always terminates.
const DefaultScanBound = 365

// LogRepository is the slice of the log store the calculator needs.
type LogRepository interface {
	GetForDate(ctx context.Context, date string) ([]tracking.LogRecord, error)
}

// Calculator derives consecutive-completion streaks from log history.
type Calculator struct {
	logs   LogRepository
	clock  clock.Clock
	bound  int
	logger *slog.Logger
}

// NewCalculator creates a streak calculator. A non-positive bound falls
// back to DefaultScanBound.
func NewCalculator(logs LogRepository, clk clock.Clock, bound int, logger *slog.Logger) *Calculator {
	if bound <= 0 {
		bound = DefaultScanBound
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logs: logs, clock: clk, bound: bound, logger: logger}
}

// Compute walks the log history backward from today, one day at a time.
// A day qualifies when its non-history minutes reach 80% of planned and at
// least one of those records was stamped inside the activity's window.
// Today not qualifying yet does not zero the streak; the count then starts
// from yesterday. The first non-qualifying earlier day ends the walk.
func (c *Calculator) Compute(ctx context.Context, act schedule.Activity) (int, error) {
	today := c.clock.Now()
	streak := 0

	for i := 0; i < c.bound; i++ {
		date := today.AddDate(0, 0, -i).Format(clock.DateFormat)
		records, err := c.logs.GetForDate(ctx, date)
		if err != nil {
			return 0, fmt.Errorf("loading logs for %s: %w", date, err)
		}
		if qualifies(act, records) {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}
	return streak, nil
}

// ComputeAll computes streaks for every activity independently.
func (c *Calculator) ComputeAll(ctx context.Context, activities []schedule.Activity) (map[string]int, error) {
	streaks := make(map[string]int, len(activities))
	for _, act := range activities {
		count, err := c.Compute(ctx, act)
		if err != nil {
			return nil, err
		}
		streaks[act.ID] = count
	}
	return streaks, nil
}

// qualifies applies the streak evidence rules to one day's records.
// Back-filled history entries are excluded: they neither extend nor repair
// a streak.
func qualifies(act schedule.Activity, records []tracking.LogRecord) bool {
	total := 0
	inWindow := false
	for _, rec := range records {
		if rec.ActivityID != act.ID || rec.IsHistory {
			continue
		}
		total += rec.Minutes
		if act.Window.Contains(schedule.MinuteOfDay(rec.Timestamp)) {
			inWindow = true
		}
	}
	return total > 0 && act.Completed(total) && inWindow
}
