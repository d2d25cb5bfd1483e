package tracking

import "time"

// LogRecord is an immutable per-day, per-activity minute record. Records
// are append-only; multiple records per activity per day are summed.
type LogRecord struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	ActivityID string    `json:"activity_id"`
	Minutes    int       `json:"minutes"`
	Timestamp  time.Time `json:"timestamp"`
	// IsHistory marks a manually back-filled entry. History entries count
	// toward today's totals but never qualify a day for a streak.
	IsHistory bool `json:"is_history"`
}

// Timer is an ephemeral in-memory counter for one running activity. Timers
// are not persisted; an open timer is lost if the process restarts.
type Timer struct {
	ActivityID string
	StartedAt  time.Time
}

// Elapsed returns the running duration as of now.
func (t Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.StartedAt)
}
