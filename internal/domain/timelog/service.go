package timelog

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

type TimeLogService interface {
	// Create records a clock event after checking ownership and the
	// geofence. Employees may only record events for themselves; admins
	// may record on behalf of any user.
	Create(ctx context.Context, req CreateRequest, actorID int64, actorRole user.Role) (Response, error)

	// Status derives the current attendance state of one user from their
	// log history.
	Status(ctx context.Context, userID int64) (StatusResponse, error)
}
