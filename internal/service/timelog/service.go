package timelog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
	"github.com/staffclock/attendance-backend-go/internal/pkg/geo"
)

type TimeLogServiceImpl struct {
	db *database.DB
	timelog.TimeLogRepository
	user.UserRepository
	settings.GeoSettingsRepository
}

func NewTimeLogService(
	db *database.DB,
	timeLogRepository timelog.TimeLogRepository,
	userRepository user.UserRepository,
	geoSettingsRepository settings.GeoSettingsRepository,
) timelog.TimeLogService {
	return &TimeLogServiceImpl{
		db:                    db,
		TimeLogRepository:     timeLogRepository,
		UserRepository:        userRepository,
		GeoSettingsRepository: geoSettingsRepository,
	}
}

// Create implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Create(ctx context.Context, req timelog.CreateRequest, actorID int64, actorRole user.Role) (timelog.Response, error) {
	if req.UserID != actorID && actorRole != user.RoleAdmin {
		return timelog.Response{}, timelog.ErrNotLogOwner
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		if err == pgx.ErrNoRows {
			return timelog.Response{}, user.ErrUserNotFound
		}
		return timelog.Response{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Location == nil {
		return timelog.Response{}, timelog.ErrLocationRequired
	}

	geoSettings, err := s.GeoSettingsRepository.Get(ctx)
	if err != nil {
		return timelog.Response{}, fmt.Errorf("failed to get geofence settings: %w", err)
	}

	// Without a configured center the fence is not enforced and no
	// distance is reported.
	var distance *float64
	if geoSettings.Configured() {
		d := geo.Distance(
			req.Location.Latitude, req.Location.Longitude,
			geoSettings.Center.Latitude, geoSettings.Center.Longitude,
		)
		distance = &d
		if d > float64(geoSettings.Radius) {
			return timelog.Response{}, timelog.ErrOutsideAllowedArea
		}
	}

	created, err := s.TimeLogRepository.Create(ctx, timelog.TimeLog{
		UserID:    req.UserID,
		Timestamp: req.Timestamp,
		Type:      timelog.LogType(req.Type),
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		return timelog.Response{}, fmt.Errorf("failed to create time log: %w", err)
	}

	resp := timelog.ToResponse(created)
	resp.DistanceMeters = distance
	return resp, nil
}

// Status implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Status(ctx context.Context, userID int64) (timelog.StatusResponse, error) {
	logs, err := s.TimeLogRepository.ListByUser(ctx, userID)
	if err != nil {
		return timelog.StatusResponse{}, fmt.Errorf("failed to list time logs: %w", err)
	}

	state := timelog.DeriveState(logs, time.Now())
	return timelog.ToStatusResponse(state), nil
}
