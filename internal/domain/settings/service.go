package settings

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
)

type SettingsService interface {
	// GetGeo returns the current geofence configuration.
	GetGeo(ctx context.Context) (GeoSettings, error)

	// UpdateGeo overwrites the geofence configuration.
	UpdateGeo(ctx context.Context, req UpdateGeoRequest) (GeoSettings, error)

	// UpdateShiftGracePeriods applies a batch of grace period changes
	// atomically: one unknown shift id rolls back the whole batch.
	UpdateShiftGracePeriods(ctx context.Context, req shift.UpdateGracePeriodsRequest) ([]shift.Shift, error)
}
