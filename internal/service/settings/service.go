package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
	"github.com/staffclock/attendance-backend-go/internal/repository/postgresql"
)

type SettingsServiceImpl struct {
	db *database.DB
	settings.GeoSettingsRepository
	shift.ShiftRepository
}

func NewSettingsService(
	db *database.DB,
	geoSettingsRepository settings.GeoSettingsRepository,
	shiftRepository shift.ShiftRepository,
) settings.SettingsService {
	return &SettingsServiceImpl{
		db:                    db,
		GeoSettingsRepository: geoSettingsRepository,
		ShiftRepository:       shiftRepository,
	}
}

// GetGeo implements settings.SettingsService.
func (s *SettingsServiceImpl) GetGeo(ctx context.Context) (settings.GeoSettings, error) {
	geo, err := s.GeoSettingsRepository.Get(ctx)
	if err != nil {
		return settings.GeoSettings{}, fmt.Errorf("failed to get geofence settings: %w", err)
	}
	return geo, nil
}

// UpdateGeo implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateGeo(ctx context.Context, req settings.UpdateGeoRequest) (settings.GeoSettings, error) {
	geo := settings.GeoSettings{
		Center: req.Center,
		Radius: req.Radius,
	}

	if err := s.GeoSettingsRepository.Update(ctx, geo); err != nil {
		return settings.GeoSettings{}, fmt.Errorf("failed to update geofence settings: %w", err)
	}
	return geo, nil
}

// UpdateShiftGracePeriods implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateShiftGracePeriods(ctx context.Context, req shift.UpdateGracePeriodsRequest) ([]shift.Shift, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, u := range req {
			if err := s.ShiftRepository.UpdateGracePeriod(txCtx, u.ID, u.LateGracePeriod); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}
