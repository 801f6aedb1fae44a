package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

var testShifts = []shift.Shift{
	{ID: 1, Name: "Morning", StartTime: "08:30", EndTime: "16:30", LateGracePeriod: 15},
	{ID: 2, Name: "Afternoon", StartTime: "16:30", EndTime: "00:30", LateGracePeriod: 15},
	{ID: 3, Name: "Night", StartTime: "00:30", EndTime: "08:30", LateGracePeriod: 15},
}

var testUsers = []user.User{
	{ID: 1, Username: "admin", FirstName: "System", LastName: "Admin", Position: "Administrator", Role: user.RoleAdmin},
	{ID: 2, Username: "somchai", FirstName: "Somchai", LastName: "Jaidee", Position: "Nurse", Role: user.RoleEmployee},
}

func ms(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).UnixMilli()
}

func ipPtr(s string) *string { return &s }

func TestBuildMonthly_OnTimeWithClockOut(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20), IPAddress: ipPtr("10.0.0.5")},
		{ID: 2, UserID: 2, Type: timelog.TypeOut, Timestamp: ms(2024, time.March, 11, 16, 45), IPAddress: ipPtr("10.0.0.6")},
	}
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, StatusOnTime, row.Status)
	assert.Equal(t, "Morning", row.Shift)
	assert.Equal(t, "Somchai Jaidee", row.Employee)
	assert.Equal(t, "08:20:00", row.ClockIn)
	require.NotNil(t, row.ClockOut)
	assert.Equal(t, "16:45:00", *row.ClockOut)
	assert.Equal(t, "10.0.0.5", *row.IPAddressIn)
	assert.Equal(t, "10.0.0.6", *row.IPAddressOut)
}

func TestBuildMonthly_LateClockIn(t *testing.T) {
	// Grace is 15 minutes: 08:46 is past 08:30+15m.
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 46)},
		{ID: 2, UserID: 2, Type: timelog.TypeOut, Timestamp: ms(2024, time.March, 11, 16, 40)},
	}
	now := time.Date(2024, time.March, 11, 17, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, StatusLate, rows[0].Status)
}

func TestBuildMonthly_NoClockOutAfterShiftEnd(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
	}
	// Morning shift ended at 16:30; it is now well past that.
	now := time.Date(2024, time.March, 11, 18, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, StatusNoClockOut, rows[0].Status)
	assert.Nil(t, rows[0].ClockOut)
}

func TestBuildMonthly_MissingOutBeforeShiftEnd(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
	}
	// Shift still running: status keeps the lateness verdict.
	now := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, StatusOnTime, rows[0].Status)
	assert.Nil(t, rows[0].ClockOut)
}

func TestBuildMonthly_NightShiftEndsNextDay(t *testing.T) {
	// Afternoon shift 16:30-00:30 crosses midnight: at 23:00 the same
	// evening it has not ended yet.
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 16, 40)},
	}
	now := time.Date(2024, time.March, 11, 23, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, StatusOnTime, rows[0].Status)

	// Past 00:30 the next day the verdict flips.
	now = time.Date(2024, time.March, 12, 1, 0, 0, 0, time.UTC)
	rows = BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, StatusNoClockOut, rows[0].Status)
}

func TestBuildMonthly_EarliestInLatestOutWin(t *testing.T) {
	// Insertion order scrambled on purpose.
	logs := []timelog.TimeLog{
		{ID: 3, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 9, 10)},
		{ID: 4, UserID: 2, Type: timelog.TypeOut, Timestamp: ms(2024, time.March, 11, 17, 30)},
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
		{ID: 5, UserID: 2, Type: timelog.TypeOut, Timestamp: ms(2024, time.March, 11, 12, 0)},
	}
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "08:20:00", row.ClockIn)
	require.NotNil(t, row.ClockOut)
	assert.Equal(t, "17:30:00", *row.ClockOut)
	assert.Equal(t, StatusOnTime, row.Status)
}

func TestBuildMonthly_DanglingOutDropped(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeOut, Timestamp: ms(2024, time.March, 11, 16, 45)},
	}
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	assert.Empty(t, rows)
}

func TestBuildMonthly_OtherMonthExcluded(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.February, 28, 8, 20)},
		{ID: 2, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 1, 8, 20)},
	}
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03-01", rows[0].Date)
}

func TestBuildMonthly_SortedNewestFirst(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
		{ID: 2, UserID: 1, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 12, 8, 25)},
		{ID: 3, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 13, 8, 15)},
	}
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	require.Len(t, rows, 3)
	assert.Equal(t, "2024-03-13", rows[0].Date)
	assert.Equal(t, "2024-03-12", rows[1].Date)
	assert.Equal(t, "2024-03-11", rows[2].Date)
}

func TestBuildMonthly_EmptyInputs(t *testing.T) {
	now := time.Now()

	assert.Empty(t, BuildMonthly(nil, nil, nil, 2024, time.March, now, time.UTC))
	assert.Empty(t, BuildMonthly(nil, testUsers, testShifts, 2024, time.March, now, time.UTC))

	// Logs present but no shifts configured: days cannot be classified.
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 2, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
	}
	assert.Empty(t, BuildMonthly(logs, testUsers, nil, 2024, time.March, now, time.UTC))
}

func TestBuildMonthly_UnknownUserSkipped(t *testing.T) {
	logs := []timelog.TimeLog{
		{ID: 1, UserID: 99, Type: timelog.TypeIn, Timestamp: ms(2024, time.March, 11, 8, 20)},
	}
	now := time.Now()

	rows := BuildMonthly(logs, testUsers, testShifts, 2024, time.March, now, time.UTC)

	assert.Empty(t, rows)
}
