package dashboard

import (
	"context"
)

type DashboardService interface {
	// GetEmployeeData returns one user's profile, logs and the shared
	// shift/geofence configuration.
	GetEmployeeData(ctx context.Context, userID int64) (EmployeeDataResponse, error)

	// GetAllData returns every account and every log plus the shared
	// configuration. Admin only.
	GetAllData(ctx context.Context) (AllDataResponse, error)
}
