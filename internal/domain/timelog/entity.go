package timelog

import "time"

type LogType string

const (
	TypeIn  LogType = "in"
	TypeOut LogType = "out"
)

// TimeLog is an append-only clock event. Records are never updated or
// deleted; everything derived from them is recomputed on read.
type TimeLog struct {
	ID        int64
	UserID    int64
	Timestamp int64 // Unix milliseconds
	Type      LogType
	Latitude  float64
	Longitude float64
	IPAddress *string
	CreatedAt time.Time
}

// Time returns the event instant.
func (l *TimeLog) Time() time.Time {
	return time.UnixMilli(l.Timestamp)
}
