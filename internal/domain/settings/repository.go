package settings

import "context"

type GeoSettingsRepository interface {
	// Get returns the singleton geofence settings row.
	Get(ctx context.Context) (GeoSettings, error)

	// Update overwrites the singleton row.
	Update(ctx context.Context, geo GeoSettings) error
}
