package insight

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/tracking"
)

// DefaultWindowDays is the trailing window the engine analyzes.
const DefaultWindowDays = 7

// Engine derives insights and deviation warnings from a trailing window of
// day summaries. All derivations are pure recomputations; nothing persists
// between runs except awarded achievement keys.
type Engine struct {
	logs       LogRepository
	windowDays int
	clock      clock.Clock
	logger     *slog.Logger
}

// NewEngine creates an insight engine. A non-positive window falls back to
// DefaultWindowDays.
func NewEngine(logs LogRepository, clk clock.Clock, windowDays int, logger *slog.Logger) *Engine {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logs: logs, windowDays: windowDays, clock: clk, logger: logger}
}

// WindowDays returns the configured trailing-window length.
func (e *Engine) WindowDays() int { return e.windowDays }

// TrailingWindow builds per-day summaries for the trailing window ending
// today, oldest day first.
func (e *Engine) TrailingWindow(ctx context.Context, activities []schedule.Activity) ([]DaySummary, error) {
	now := e.clock.Now()
	window := make([]DaySummary, 0, e.windowDays)

	for i := e.windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(clock.DateFormat)
		records, err := e.logs.GetForDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("loading logs for %s: %w", date, err)
		}
		window = append(window, summarizeDay(date, day.Weekday().String(), activities, records))
	}
	return window, nil
}

func summarizeDay(date, dayName string, activities []schedule.Activity, records []tracking.LogRecord) DaySummary {
	summary := DaySummary{
		Date:       date,
		Day:        dayName,
		Activities: make(map[string]ActivitySummary, len(activities)),
	}
	for _, act := range activities {
		total, history := 0, 0
		for _, rec := range records {
			if rec.ActivityID != act.ID {
				continue
			}
			total += rec.Minutes
			if rec.IsHistory {
				history += rec.Minutes
			}
		}
		streakMinutes := total - history
		summary.Activities[act.ID] = ActivitySummary{
			ActivityID:     act.ID,
			Name:           act.Name,
			Planned:        act.PlannedMinutes,
			Actual:         total,
			StreakMinutes:  streakMinutes,
			HistoryMinutes: history,
			Variance:       act.Variance(total),
			Calories:       int(math.Round(float64(total) * act.CalPerMinute)),
			Completed:      act.Completed(streakMinutes),
		}
	}
	return summary
}

// Analyze derives insights and deviations from a trailing window, in
// insertion order: per-activity consistency, streak milestones, then the
// overall weekly performance insight; deviations follow catalog order with
// chronic misses last.
func (e *Engine) Analyze(window []DaySummary, activities []schedule.Activity, streaks map[string]int) ([]Insight, []Deviation) {
	insights := make([]Insight, 0)
	deviations := make([]Deviation, 0)
	days := len(window)
	if days == 0 || len(activities) == 0 {
		return insights, deviations
	}

	totalCompletedDays := 0
	for _, act := range activities {
		completions := 0
		for _, day := range window {
			if day.Activities[act.ID].Completed {
				completions++
			}
		}
		totalCompletedDays += completions

		rate := float64(completions) / float64(days)
		percent := int(math.Round(rate * 100))
		switch {
		case rate >= 0.85:
			insights = append(insights, Insight{
				Severity:   SeveritySuccess,
				Code:       "consistency_mastery",
				ActivityID: act.ID,
				Message:    fmt.Sprintf("💪 Mastery: %s completed %d of %d days (%d%%)", act.Name, completions, days, percent),
			})
		case rate < 0.5 && completions > 0:
			insights = append(insights, Insight{
				Severity:   SeverityWarning,
				Code:       "consistency_warning",
				ActivityID: act.ID,
				Message:    fmt.Sprintf("⚠️ %s slipping: only %d of %d days (%d%%)", act.Name, completions, days, percent),
			})
		}
	}

	for _, act := range activities {
		count := streaks[act.ID]
		if count < 10 {
			continue
		}
		remaining := 20 - count%20
		insights = append(insights, Insight{
			Severity:   SeveritySuccess,
			Code:       "streak_milestone",
			ActivityID: act.ID,
			Message:    fmt.Sprintf("🔥 %s on a %d-day streak! %d days to the next milestone", act.Name, count, remaining),
		})
	}

	weeklyRate := int(math.Round(float64(totalCompletedDays) / float64(days*len(activities)) * 100))
	insights = append(insights, Insight{
		Severity: SeverityInfo,
		Code:     "weekly_performance",
		Message:  fmt.Sprintf("📊 Weekly performance: %d%% of activity-days completed", weeklyRate),
	})

	for _, act := range activities {
		varianceSum, varianceDays := 0, 0
		for _, day := range window {
			summary := day.Activities[act.ID]
			// Fully missed days carry no variance signal.
			if summary.Actual == 0 {
				continue
			}
			varianceSum += summary.Variance
			varianceDays++
		}
		if varianceDays < 3 {
			continue
		}
		avg := float64(varianceSum) / float64(varianceDays)
		if avg > 20 {
			deviations = append(deviations, Deviation{
				Type:       DeviationOver,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("%s runs over plan by %.0f minutes on average", act.Name, avg),
			})
		} else if avg < -20 {
			deviations = append(deviations, Deviation{
				Type:       DeviationUnder,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("%s runs under plan by %.0f minutes on average", act.Name, -avg),
			})
		}
	}

	for _, act := range activities {
		missedDays := 0
		for _, day := range window {
			summary := day.Activities[act.ID]
			if summary.Actual == 0 && !summary.Completed {
				missedDays++
			}
		}
		if missedDays >= 4 {
			deviations = append(deviations, Deviation{
				Type:       DeviationMissed,
				ActivityID: act.ID,
				Message:    fmt.Sprintf("%s missed on %d of the last %d days", act.Name, missedDays, days),
			})
		}
	}

	return insights, deviations
}
