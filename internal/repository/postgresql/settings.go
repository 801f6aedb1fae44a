package postgresql

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type geoSettingsRepositoryImpl struct {
	db *database.DB
}

func NewGeoSettingsRepository(db *database.DB) settings.GeoSettingsRepository {
	return &geoSettingsRepositoryImpl{db: db}
}

// Get implements settings.GeoSettingsRepository. The table holds exactly one
// row; a center is only reported when both coordinates are present.
func (r *geoSettingsRepositoryImpl) Get(ctx context.Context) (settings.GeoSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT center_latitude, center_longitude, radius
		FROM geo_settings
		WHERE id = 1
	`

	var lat, lon *float64
	var geo settings.GeoSettings
	if err := q.QueryRow(ctx, query).Scan(&lat, &lon, &geo.Radius); err != nil {
		return settings.GeoSettings{}, err
	}

	if lat != nil && lon != nil {
		geo.Center = &settings.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	return geo, nil
}

// Update implements settings.GeoSettingsRepository.
func (r *geoSettingsRepositoryImpl) Update(ctx context.Context, geo settings.GeoSettings) error {
	q := GetQuerier(ctx, r.db)

	var lat, lon *float64
	if geo.Center != nil {
		lat = &geo.Center.Latitude
		lon = &geo.Center.Longitude
	}

	query := `
		UPDATE geo_settings
		SET center_latitude = $1, center_longitude = $2, radius = $3
		WHERE id = 1
	`

	_, err := q.Exec(ctx, query, lat, lon, geo.Radius)
	return err
}
