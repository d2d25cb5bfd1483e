package report

import (
	"math"

	"github.com/daybudget/daybudget/internal/domain/schedule"
)

// Stats is the roll-up of today's activity list, logged minutes, and the
// current streak map. All rounding is to the nearest integer, half up.
type Stats struct {
	TotalVariance  int `json:"total_variance"`
	TotalCalories  int `json:"total_calories"`
	MaxStreak      int `json:"max_streak"`
	CompletionRate int `json:"completion_rate"`
}

// ComputeStats is a pure roll-up; it reads nothing but its arguments.
func ComputeStats(activities []schedule.Activity, minutes map[string]int, streaks map[string]int) Stats {
	var stats Stats
	calories := 0.0
	completed := 0

	for _, act := range activities {
		actual := minutes[act.ID]
		stats.TotalVariance += act.Variance(actual)
		calories += float64(actual) * act.CalPerMinute
		if act.Completed(actual) {
			completed++
		}
		if count := streaks[act.ID]; count > stats.MaxStreak {
			stats.MaxStreak = count
		}
	}

	stats.TotalCalories = int(math.Round(calories))
	if len(activities) > 0 {
		stats.CompletionRate = int(math.Round(float64(completed) / float64(len(activities)) * 100))
	}
	return stats
}
