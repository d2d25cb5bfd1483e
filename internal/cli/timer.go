package cli

import (
	"context"
	"time"
)

// CLI invocations are separate processes, so an in-memory timer would die
// with the command that started it. The start instant is persisted as a
// settings flag and replayed through the tracking service on stop.
func timerFlag(activityID string) string {
	return "cli_timer_" + activityID
}

func (a *app) timerStart(ctx context.Context, activityID string) (time.Time, bool, error) {
	raw, err := a.settings.LoadFlag(ctx, timerFlag(activityID), "")
	if err != nil || raw == "" {
		return time.Time{}, false, err
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Unreadable state; treat as no timer.
		return time.Time{}, false, nil
	}
	return at, true, nil
}

func (a *app) setTimerStart(ctx context.Context, activityID string, at time.Time) error {
	return a.settings.SaveFlag(ctx, timerFlag(activityID), at.Format(time.RFC3339))
}

func (a *app) clearTimerStart(ctx context.Context, activityID string) error {
	return a.settings.SaveFlag(ctx, timerFlag(activityID), "")
}
