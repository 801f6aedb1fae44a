package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultShifts() []Shift {
	return []Shift{
		{ID: 1, Name: "Morning", StartTime: "08:30", EndTime: "16:30", LateGracePeriod: 15},
		{ID: 2, Name: "Afternoon", StartTime: "16:30", EndTime: "00:30", LateGracePeriod: 15},
		{ID: 3, Name: "Night", StartTime: "00:30", EndTime: "08:30", LateGracePeriod: 15},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 11, hour, minute, 0, 0, time.UTC)
}

func TestResolve_WindowBoundaries(t *testing.T) {
	shifts := defaultShifts()

	cases := []struct {
		hour     int
		wantName string
	}{
		{6, "Morning"},
		{8, "Morning"},
		{13, "Morning"},
		{14, "Afternoon"},
		{16, "Afternoon"},
		{21, "Afternoon"},
		{22, "Night"},
		{23, "Night"},
		{0, "Night"},
		{5, "Night"},
	}
	for _, c := range cases {
		got, ok := Resolve(shifts, at(c.hour, 0))
		require.True(t, ok, "hour %d", c.hour)
		assert.Equal(t, c.wantName, got.Name, "hour %d", c.hour)
	}
}

func TestResolve_OrderIndependent(t *testing.T) {
	shifts := []Shift{
		{ID: 3, Name: "Night", StartTime: "00:30", EndTime: "08:30"},
		{ID: 1, Name: "Morning", StartTime: "08:30", EndTime: "16:30"},
		{ID: 2, Name: "Afternoon", StartTime: "16:30", EndTime: "00:30"},
	}

	got, ok := Resolve(shifts, at(9, 0))
	require.True(t, ok)
	assert.Equal(t, "Morning", got.Name)
}

func TestResolve_NoShifts(t *testing.T) {
	_, ok := Resolve(nil, at(9, 0))
	assert.False(t, ok)
}

func TestIsLate_GraceBoundary(t *testing.T) {
	s := Shift{ID: 1, Name: "Morning", StartTime: "08:30", EndTime: "16:30", LateGracePeriod: 15}

	// Exactly at start+grace is on time; one millisecond past is late.
	boundary := at(8, 45)
	assert.False(t, IsLate(s, boundary))
	assert.True(t, IsLate(s, boundary.Add(time.Millisecond)))

	assert.False(t, IsLate(s, at(8, 20)))
	assert.True(t, IsLate(s, at(9, 0)))
}

func TestIsLate_ZeroGrace(t *testing.T) {
	s := Shift{ID: 1, StartTime: "08:30", EndTime: "16:30", LateGracePeriod: 0}

	assert.False(t, IsLate(s, at(8, 30)))
	assert.True(t, IsLate(s, at(8, 30).Add(time.Millisecond)))
}

func TestEndInstant_SameDay(t *testing.T) {
	s := Shift{ID: 1, StartTime: "08:30", EndTime: "16:30"}

	end := EndInstant(s, at(9, 0))
	assert.Equal(t, at(16, 30), end)
}

func TestEndInstant_CrossesMidnight(t *testing.T) {
	s := Shift{ID: 2, StartTime: "16:30", EndTime: "00:30"}

	end := EndInstant(s, at(17, 0))
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 30, 0, 0, time.UTC), end)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("16:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 16, Minute: 30}, c)

	_, err = ParseClock("24:10")
	assert.Error(t, err)
}
