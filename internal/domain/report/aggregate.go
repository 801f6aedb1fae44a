package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

type dayPair struct {
	in  *timelog.TimeLog
	out *timelog.TimeLog
}

// BuildMonthly folds raw clock events into one row per employee per local
// calendar date. Within a day the earliest "in" and the latest "out" win;
// comparisons are strict, so ties keep the already-held event. Days without
// an "in" produce no row: a dangling "out" is silently dropped. A day whose
// shift has ended (per the midnight-crossing rule) without an "out" is
// reported as no_clock_out regardless of lateness. Rows come back sorted by
// clock-in instant, newest first. Empty inputs yield an empty report.
func BuildMonthly(
	logs []timelog.TimeLog,
	users []user.User,
	shifts []shift.Shift,
	year int,
	month time.Month,
	now time.Time,
	loc *time.Location,
) []Row {
	userByID := make(map[int64]user.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	days := make(map[string]*dayPair)
	for i := range logs {
		log := &logs[i]
		local := log.Time().In(loc)
		if local.Year() != year || local.Month() != month {
			continue
		}

		key := fmt.Sprintf("%d|%s", log.UserID, local.Format("2006-01-02"))
		pair, ok := days[key]
		if !ok {
			pair = &dayPair{}
			days[key] = pair
		}

		switch log.Type {
		case timelog.TypeIn:
			if pair.in == nil || log.Timestamp < pair.in.Timestamp {
				pair.in = log
			}
		case timelog.TypeOut:
			if pair.out == nil || log.Timestamp > pair.out.Timestamp {
				pair.out = log
			}
		}
	}

	rows := make([]Row, 0, len(days))
	for _, pair := range days {
		if pair.in == nil {
			continue
		}

		owner, ok := userByID[pair.in.UserID]
		if !ok {
			continue
		}

		inLocal := pair.in.Time().In(loc)
		workShift, ok := shift.Resolve(shifts, inLocal)
		if !ok {
			continue
		}

		status := StatusOnTime
		if shift.IsLate(workShift, inLocal) {
			status = StatusLate
		}

		row := Row{
			Date:        inLocal.Format("2006-01-02"),
			UserID:      owner.ID,
			Employee:    owner.FirstName + " " + owner.LastName,
			Position:    owner.Position,
			Shift:       workShift.Name,
			ClockIn:     inLocal.Format("15:04:05"),
			IPAddressIn: pair.in.IPAddress,
			Status:      status,
			InTimestamp: pair.in.Timestamp,
		}

		if pair.out != nil {
			outLocal := pair.out.Time().In(loc)
			clockOut := outLocal.Format("15:04:05")
			row.ClockOut = &clockOut
			row.IPAddressOut = pair.out.IPAddress
		} else if now.After(shift.EndInstant(workShift, inLocal)) {
			row.Status = StatusNoClockOut
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].InTimestamp > rows[j].InTimestamp
	})

	return rows
}
