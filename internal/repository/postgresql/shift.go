package postgresql

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, late_grace_period
		FROM shifts
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.LateGracePeriod); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// UpdateGracePeriod implements shift.ShiftRepository. Callers run bulk
// updates inside WithTransaction so a failing row rolls the batch back.
func (r *shiftRepositoryImpl) UpdateGracePeriod(ctx context.Context, id int64, minutes int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shifts SET late_grace_period = $1 WHERE id = $2`, minutes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
