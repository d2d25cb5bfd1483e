package clock

import "time"

// DateFormat is the calendar-day key used throughout the log store.
const DateFormat = "2006-01-02"

// Clock provides the current time to temporal logic so tests can control it.
type Clock interface {
	Now() time.Time
	// Today returns the current calendar day in local time, ISO form.
	Today() string
}

// System is the wall-clock implementation.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Today() string { return time.Now().Format(DateFormat) }

// Fake is a settable clock for tests.
type Fake struct {
	Time time.Time
}

// NewFake creates a fake clock pinned to t.
func NewFake(t time.Time) *Fake { return &Fake{Time: t} }

func (f *Fake) Now() time.Time { return f.Time }

func (f *Fake) Today() string { return f.Time.Format(DateFormat) }

// Set moves the fake clock to t.
func (f *Fake) Set(t time.Time) { f.Time = t }

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) { f.Time = f.Time.Add(d) }
