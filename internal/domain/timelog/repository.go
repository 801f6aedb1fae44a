package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	// Create appends a clock event. Logs are immutable after creation.
	Create(ctx context.Context, log TimeLog) (TimeLog, error)

	// ListByUser returns all logs of one user ordered by timestamp.
	ListByUser(ctx context.Context, userID int64) ([]TimeLog, error)

	// List returns every log ordered by timestamp.
	List(ctx context.Context) ([]TimeLog, error)

	// ListByMonth returns logs whose timestamp falls within the given
	// month/year evaluated in loc.
	ListByMonth(ctx context.Context, year int, month time.Month, loc *time.Location) ([]TimeLog, error)
}
