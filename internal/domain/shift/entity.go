package shift

import (
	"fmt"
	"time"
)

// Shift is a named work period. Start and end are "HH:MM" times of day; an
// end numerically earlier than the start means the shift crosses midnight
// (e.g. 16:30-00:30). Only the grace period is editable at runtime; the
// start/end pairs are fixed reference points for window classification.
type Shift struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	LateGracePeriod int    `json:"lateGracePeriod"` // minutes
}

// Clock is a parsed "HH:MM" time of day.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the clock as minutes since midnight, for ordering.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Start returns the parsed start time of day. Shifts with unparseable
// times are treated as starting at midnight.
func (s *Shift) Start() Clock {
	c, err := ParseClock(s.StartTime)
	if err != nil {
		return Clock{}
	}
	return c
}

// End returns the parsed end time of day.
func (s *Shift) End() Clock {
	c, err := ParseClock(s.EndTime)
	if err != nil {
		return Clock{}
	}
	return c
}

// CrossesMidnight reports whether the shift ends on the following calendar
// day, detected by the end time-of-day sorting before the start.
func (s *Shift) CrossesMidnight() bool {
	return s.End().Minutes() < s.Start().Minutes()
}
