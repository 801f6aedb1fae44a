package timelog

import "time"

// MinimumShiftMillis is how long an employee must stay clocked in before
// clocking out is allowed: 4 hours.
const MinimumShiftMillis int64 = 4 * 60 * 60 * 1000

// State is an employee's attendance status derived from their log history.
// It is never persisted; the latest entry by timestamp is authoritative.
type State struct {
	ClockedIn            bool
	LastLog              *TimeLog
	CanClockOut          bool
	RemainingWaitHours   int
	RemainingWaitMinutes int
}

// DeriveState computes the current state from all logs of one user. An empty
// history means clocked out. Clock-out eligibility requires the latest entry
// to be an "in" at least MinimumShiftMillis before now; when ineligible the
// remaining wait is reported in whole hours plus rounded-up minutes for
// user-facing messaging.
func DeriveState(logs []TimeLog, now time.Time) State {
	var last *TimeLog
	for i := range logs {
		if last == nil || logs[i].Timestamp > last.Timestamp {
			last = &logs[i]
		}
	}

	if last == nil {
		return State{}
	}

	state := State{
		ClockedIn: last.Type == TypeIn,
		LastLog:   last,
	}
	if !state.ClockedIn {
		return state
	}

	elapsed := now.UnixMilli() - last.Timestamp
	if elapsed >= MinimumShiftMillis {
		state.CanClockOut = true
		return state
	}

	remaining := MinimumShiftMillis - elapsed
	state.RemainingWaitHours = int(remaining / (60 * 60 * 1000))
	leftover := remaining % (60 * 60 * 1000)
	state.RemainingWaitMinutes = int((leftover + 60*1000 - 1) / (60 * 1000))
	return state
}
