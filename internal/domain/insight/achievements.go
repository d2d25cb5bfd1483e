package insight

import (
	"context"
	"fmt"
	"math"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/google/uuid"
)

// streakBadges are the per-activity streak milestones, ascending.
var streakBadges = []struct {
	value   int
	ceiling int // 0 means no upper bound
	message string
}{
	{value: 10, ceiling: 20, message: "🔥 10-day streak! Keep it up!"},
	{value: 30, message: "🏆 30-day streak! You're a legend!"},
	{value: 100, message: "👑 100-day streak! Unstoppable!"},
}

// Awarder emits achievements, de-duplicated through a persisted set of
// already-awarded keys.
type Awarder struct {
	store AchievementRepository
	clock clock.Clock
}

// NewAwarder creates an achievement awarder.
func NewAwarder(store AchievementRepository, clk clock.Clock) *Awarder {
	return &Awarder{store: store, clock: clk}
}

// Check evaluates streak and completion badges against the awarded set and
// persists anything newly earned. Returns only the new awards.
func (a *Awarder) Check(ctx context.Context, activities []schedule.Activity, streaks map[string]int, minutesToday map[string]int) ([]Achievement, error) {
	var earned []Achievement

	for _, act := range activities {
		count := streaks[act.ID]
		for _, badge := range streakBadges {
			if count < badge.value {
				continue
			}
			if badge.ceiling > 0 && count >= badge.ceiling {
				continue
			}
			key := fmt.Sprintf("streak_%d_%s", badge.value, act.ID)
			awarded, err := a.award(ctx, Achievement{
				Key:        key,
				Type:       "streak",
				ActivityID: act.ID,
				Value:      badge.value,
				Message:    badge.message,
			})
			if err != nil {
				return nil, err
			}
			if awarded != nil {
				earned = append(earned, *awarded)
			}
		}
	}

	if len(activities) > 0 {
		completed := 0
		for _, act := range activities {
			if act.Completed(minutesToday[act.ID]) {
				completed++
			}
		}
		rate := int(math.Round(float64(completed) / float64(len(activities)) * 100))
		if rate == 100 {
			awarded, err := a.award(ctx, Achievement{
				Key:     "perfect_day",
				Type:    "completion",
				Value:   100,
				Message: "⭐ Perfect Day! You nailed it!",
			})
			if err != nil {
				return nil, err
			}
			if awarded != nil {
				earned = append(earned, *awarded)
			}
		}
	}

	return earned, nil
}

func (a *Awarder) award(ctx context.Context, achievement Achievement) (*Achievement, error) {
	already, err := a.store.IsAwarded(ctx, achievement.Key)
	if err != nil {
		return nil, fmt.Errorf("checking badge %s: %w", achievement.Key, err)
	}
	if already {
		return nil, nil
	}

	achievement.ID = uuid.NewString()
	achievement.Date = a.clock.Today()
	achievement.Timestamp = a.clock.Now()
	if err := a.store.Award(ctx, &achievement); err != nil {
		return nil, fmt.Errorf("awarding badge %s: %w", achievement.Key, err)
	}
	return &achievement, nil
}
