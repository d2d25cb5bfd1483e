package tracking

import "github.com/daybudget/daybudget/internal/domain/schedule"

// Status is the display state of an activity. It is never stored: it is
// recomputed from current time, today's logged minutes, and active-timer
// presence, which keeps the state machine idempotent.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
	StatusUpcoming  Status = "upcoming"
)

// StatusOf computes the state of an activity. Precedence: a running timer
// wins, then completion against the 80% threshold, then a closed window.
func StatusOf(act schedule.Activity, loggedMinutes int, timerRunning bool, nowMinute int) Status {
	switch {
	case timerRunning:
		return StatusActive
	case loggedMinutes > 0 && act.Completed(loggedMinutes):
		return StatusCompleted
	case act.Window.Past(nowMinute):
		return StatusMissed
	default:
		return StatusUpcoming
	}
}
