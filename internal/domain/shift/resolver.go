package shift

import "time"

// The day is partitioned into three contiguous windows, each owning the
// shift whose nominal start falls inside it: 06:00-13:59 for the morning
// shift (08:30), 14:00-21:59 for the afternoon shift (16:30), and the
// remaining hours for the night shift (00:30). This windowing approximates
// which shift the employee intended to work; it is deliberately not an
// exact nearest-start match.
const (
	morningWindowStart   = 6
	afternoonWindowStart = 14
	afternoonWindowEnd   = 22
)

func windowOf(hour int) int {
	switch {
	case hour >= morningWindowStart && hour < afternoonWindowStart:
		return 0
	case hour >= afternoonWindowStart && hour < afternoonWindowEnd:
		return 1
	default:
		return 2
	}
}

// Resolve classifies a clock-in instant into one of the configured shifts
// by its local hour-of-day window. The second return value is false when no
// configured shift starts inside the matched window; callers exclude such
// days from reporting.
func Resolve(shifts []Shift, t time.Time) (Shift, bool) {
	want := windowOf(t.Hour())
	for _, s := range shifts {
		if windowOf(s.Start().Hour) == want {
			return s, true
		}
	}
	return Shift{}, false
}

// StartInstant places the shift's nominal start on the same calendar date
// as t.
func StartInstant(s Shift, t time.Time) time.Time {
	start := s.Start()
	return time.Date(t.Year(), t.Month(), t.Day(), start.Hour, start.Minute, 0, 0, t.Location())
}

// IsLate reports whether a clock-in at t exceeds the shift's nominal start
// plus its grace period. A clock-in exactly at start+grace is on time; one
// millisecond past is late.
func IsLate(s Shift, t time.Time) bool {
	threshold := StartInstant(s, t).Add(time.Duration(s.LateGracePeriod) * time.Minute)
	return t.After(threshold)
}

// EndInstant returns the effective end of the shift worked on t's calendar
// date. Shifts crossing midnight end on the following day.
func EndInstant(s Shift, t time.Time) time.Time {
	end := s.End()
	instant := time.Date(t.Year(), t.Month(), t.Day(), end.Hour, end.Minute, 0, 0, t.Location())
	if s.CrossesMidnight() {
		instant = instant.AddDate(0, 0, 1)
	}
	return instant
}
