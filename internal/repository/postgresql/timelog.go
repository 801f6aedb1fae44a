package postgresql

import (
	"context"
	"time"

	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

const timeLogColumns = `id, user_id, timestamp_ms, type, latitude, longitude, ip_address, created_at`

func scanTimeLog(row interface{ Scan(dest ...any) error }) (timelog.TimeLog, error) {
	var l timelog.TimeLog
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Timestamp,
		&l.Type,
		&l.Latitude,
		&l.Longitude,
		&l.IPAddress,
		&l.CreatedAt,
	)
	return l, err
}

// Create implements timelog.TimeLogRepository. There is no update or delete:
// time logs are append-only.
func (r *timeLogRepositoryImpl) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_logs (user_id, timestamp_ms, type, latitude, longitude, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timeLogColumns + `
	`

	return scanTimeLog(q.QueryRow(ctx, query,
		log.UserID,
		log.Timestamp,
		log.Type,
		log.Latitude,
		log.Longitude,
		log.IPAddress,
	))
}

// ListByUser implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE user_id = $1
		ORDER BY timestamp_ms
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeLogs(rows)
}

// List implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) List(ctx context.Context) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		ORDER BY timestamp_ms
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeLogs(rows)
}

// ListByMonth implements timelog.TimeLogRepository. The month boundaries are
// evaluated in loc so report grouping and filtering agree on what a day is.
func (r *timeLogRepositoryImpl) ListByMonth(ctx context.Context, year int, month time.Month, loc *time.Location) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE timestamp_ms >= $1 AND timestamp_ms < $2
		ORDER BY timestamp_ms
	`

	rows, err := q.Query(ctx, query, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeLogs(rows)
}

func collectTimeLogs(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]timelog.TimeLog, error) {
	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
