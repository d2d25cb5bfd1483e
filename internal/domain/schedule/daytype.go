package schedule

import "time"

// DayType selects which activity catalog applies to a calendar day.
type DayType string

const (
	// DaySoldier is the full Mon-Thu routine.
	DaySoldier DayType = "soldier"
	// DayFriday is the WFH variant with an afternoon gym slot.
	DayFriday DayType = "friday"
	// DaySaturday swaps the run for a long run and adds league play.
	DaySaturday DayType = "saturday"
	// DaySunday is the rest-day catalog.
	DaySunday DayType = "sunday"
)

// DayTypeFor derives the day type from the calendar weekday. Anything
// unrecognized degrades to soldier rather than failing.
func DayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		return DaySaturday
	case time.Friday:
		return DayFriday
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return DaySoldier
	default:
		return DaySoldier
	}
}

// Label returns the display name for a day type.
func (d DayType) Label() string {
	switch d {
	case DaySoldier:
		return "⚔️ Soldier Day"
	case DayFriday:
		return "✨ Golden Day"
	case DaySaturday:
		return "🏃 Weekend"
	case DaySunday:
		return "😴 Rest Day"
	default:
		return string(d)
	}
}
