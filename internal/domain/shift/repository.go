package shift

import "context"

type ShiftRepository interface {
	// List returns the configured shifts ordered by id.
	List(ctx context.Context) ([]Shift, error)

	// UpdateGracePeriod changes the lateness grace of one shift.
	UpdateGracePeriod(ctx context.Context, id int64, minutes int) error
}
