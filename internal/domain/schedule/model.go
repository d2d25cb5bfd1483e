package schedule

// Activity is the immutable definition of one scheduled activity for a day.
// The catalog builds a fresh slice per day type; entries are never mutated
// in place. IDs are the stable base keys, so log history recorded under one
// day type stays addressable under every other.
type Activity struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Icon           string     `json:"icon" yaml:"icon"`
	PlannedMinutes int        `json:"planned_minutes" yaml:"planned_minutes"`
	CalPerMinute   float64    `json:"cal_per_minute" yaml:"cal_per_minute"`
	Window         TimeWindow `json:"window" yaml:"window"`
}

// CompletionThreshold is the fraction of planned minutes that counts as a
// completed day. Used uniformly by the state machine, streaks, insights,
// and stats.
const CompletionThreshold = 0.8

// Completed reports whether actual minutes meet the completion threshold.
func (a Activity) Completed(actualMinutes int) bool {
	return float64(actualMinutes) >= float64(a.PlannedMinutes)*CompletionThreshold
}

// Variance is actual minutes minus planned minutes.
func (a Activity) Variance(actualMinutes int) int {
	return actualMinutes - a.PlannedMinutes
}
