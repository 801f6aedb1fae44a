package timelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveState_NoLogs(t *testing.T) {
	state := DeriveState(nil, time.Now())

	assert.False(t, state.ClockedIn)
	assert.False(t, state.CanClockOut)
	assert.Nil(t, state.LastLog)
}

func TestDeriveState_LatestEntryWins(t *testing.T) {
	now := time.Now()
	logs := []TimeLog{
		{ID: 1, UserID: 7, Type: TypeIn, Timestamp: now.Add(-10 * time.Hour).UnixMilli()},
		{ID: 3, UserID: 7, Type: TypeIn, Timestamp: now.Add(-5 * time.Hour).UnixMilli()},
		{ID: 2, UserID: 7, Type: TypeOut, Timestamp: now.Add(-8 * time.Hour).UnixMilli()},
	}

	state := DeriveState(logs, now)

	assert.True(t, state.ClockedIn)
	assert.Equal(t, int64(3), state.LastLog.ID)
}

func TestDeriveState_ClockedOutAfterOut(t *testing.T) {
	now := time.Now()
	logs := []TimeLog{
		{ID: 1, Type: TypeIn, Timestamp: now.Add(-9 * time.Hour).UnixMilli()},
		{ID: 2, Type: TypeOut, Timestamp: now.Add(-1 * time.Hour).UnixMilli()},
	}

	state := DeriveState(logs, now)

	assert.False(t, state.ClockedIn)
	assert.False(t, state.CanClockOut)
}

func TestDeriveState_ClockOutEligibleAfterFourHours(t *testing.T) {
	now := time.Now()

	exactly := []TimeLog{{ID: 1, Type: TypeIn, Timestamp: now.Add(-4 * time.Hour).UnixMilli()}}
	state := DeriveState(exactly, now)
	assert.True(t, state.CanClockOut)

	over := []TimeLog{{ID: 1, Type: TypeIn, Timestamp: now.Add(-5 * time.Hour).UnixMilli()}}
	state = DeriveState(over, now)
	assert.True(t, state.CanClockOut)
}

func TestDeriveState_RemainingWaitJustUnderFourHours(t *testing.T) {
	now := time.Now()
	logs := []TimeLog{
		{ID: 1, Type: TypeIn, Timestamp: now.Add(-(3*time.Hour + 59*time.Minute)).UnixMilli()},
	}

	state := DeriveState(logs, now)

	assert.True(t, state.ClockedIn)
	assert.False(t, state.CanClockOut)
	assert.Equal(t, 0, state.RemainingWaitHours)
	assert.Equal(t, 1, state.RemainingWaitMinutes)
}

func TestDeriveState_RemainingWaitHoursAndMinutes(t *testing.T) {
	now := time.Now()
	logs := []TimeLog{
		{ID: 1, Type: TypeIn, Timestamp: now.Add(-(1*time.Hour + 30*time.Minute)).UnixMilli()},
	}

	state := DeriveState(logs, now)

	assert.False(t, state.CanClockOut)
	assert.Equal(t, 2, state.RemainingWaitHours)
	assert.Equal(t, 30, state.RemainingWaitMinutes)
}
