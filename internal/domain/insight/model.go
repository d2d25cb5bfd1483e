package insight

import "time"

// ActivitySummary is one activity's roll-up for a single day.
type ActivitySummary struct {
	ActivityID string `json:"activity_id"`
	Name       string `json:"name"`
	Planned    int    `json:"planned"`
	Actual     int    `json:"actual"`
	// StreakMinutes is actual minus history-flagged minutes: the only
	// minutes that count as streak evidence.
	StreakMinutes  int  `json:"streak_minutes"`
	HistoryMinutes int  `json:"history_minutes"`
	Variance       int  `json:"variance"`
	Calories       int  `json:"calories"`
	Completed      bool `json:"completed"`
}

// DaySummary holds per-activity roll-ups for one calendar day.
type DaySummary struct {
	Date       string                     `json:"date"`
	Day        string                     `json:"day"`
	Activities map[string]ActivitySummary `json:"activities"`
}

// Severity grades an insight.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Insight is a tagged qualitative message derived from the trailing window.
type Insight struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	ActivityID string   `json:"activity_id,omitempty"`
	Message    string   `json:"message"`
}

// DeviationType classifies a systematic deviation.
type DeviationType string

const (
	DeviationOver   DeviationType = "over"
	DeviationUnder  DeviationType = "under"
	DeviationMissed DeviationType = "missed"
)

// Deviation warns about a systematic over/under spend or chronic miss.
type Deviation struct {
	Type       DeviationType `json:"type"`
	ActivityID string        `json:"activity_id"`
	Message    string        `json:"message"`
}

// Achievement is an awarded badge. The Key identifies the badge for
// de-duplication; once persisted it is never emitted again.
type Achievement struct {
	ID         string    `json:"id"`
	Key        string    `json:"key"`
	Type       string    `json:"type"`
	ActivityID string    `json:"activity_id,omitempty"`
	Value      int       `json:"value"`
	Message    string    `json:"message"`
	Date       string    `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
}
