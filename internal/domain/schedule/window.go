package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minutesPerDay is the size of one wall-clock day cycle.
const minutesPerDay = 24 * 60

// TimeWindow is a start/end pair in minutes of day (0-1439). When End is
// earlier than Start the window wraps past midnight, e.g. sleep 23:00-06:00.
type TimeWindow struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// MinuteOfDay returns the wall-clock minute component of t (0-1439).
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClock converts an "HH:MM" string to minutes of day. The whole
// input must parse; trailing characters are rejected.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return h*60 + m, nil
}

// Wraps reports whether the window spans midnight.
func (w TimeWindow) Wraps() bool {
	return w.End < w.Start
}

// Contains reports whether minute t falls inside the window. Same-day
// windows cover [start, end); wrapping windows cover t >= start OR t < end.
func (w TimeWindow) Contains(t int) bool {
	if w.Wraps() {
		return t >= w.Start || t < w.End
	}
	return t >= w.Start && t < w.End
}

// Past reports whether minute t is strictly after the window closed, i.e.
// the activity is missed. For a wrapping window the missed region is the
// narrow gap after the window closes and before it reopens the same day.
func (w TimeWindow) Past(t int) bool {
	if w.Wraps() {
		return t > w.End && t < w.Start
	}
	return t > w.End
}

// String renders the window as "HH:MM - HH:MM".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", formatClock(w.Start), formatClock(w.End))
}

func formatClock(m int) string {
	m %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// mustWindow builds a window from clock strings; for the fixed base table.
func mustWindow(start, end string) TimeWindow {
	s, err := ParseClock(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseClock(end)
	if err != nil {
		panic(err)
	}
	if s == e {
		panic(fmt.Sprintf("degenerate window %s-%s", start, end))
	}
	return TimeWindow{Start: s, End: e}
}
