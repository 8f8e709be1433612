package core

import "time"

// dayFormat is the fixed calendar-day key used for streak and failure-count
// comparisons. Day identity is string equality of this format in the local
// location, not an elapsed-24h window: 23:59 and 00:01 the next minute are
// different days.
const dayFormat = "2006-01-02"

// Clock supplies the current time. All streak, failure-count, and lockout
// decisions go through it so tests can pin the calendar.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// DayKey returns the calendar-day identity of t.
func DayKey(t time.Time) string {
	return t.Local().Format(dayFormat)
}

// SameDay reports whether a and b fall on the same calendar day. A zero
// time belongs to no day.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return DayKey(a) == DayKey(b)
}

// IsYesterday reports whether prev falls on the calendar day immediately
// before now.
func IsYesterday(prev, now time.Time) bool {
	if prev.IsZero() {
		return false
	}
	return DayKey(prev) == DayKey(now.AddDate(0, 0, -1))
}
