package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffclock/attendance-backend-go/internal/domain/dashboard"
	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type DashboardServiceImpl struct {
	db *database.DB
	user.UserRepository
	timelog.TimeLogRepository
	shift.ShiftRepository
	settings.GeoSettingsRepository
}

func NewDashboardService(
	db *database.DB,
	userRepository user.UserRepository,
	timeLogRepository timelog.TimeLogRepository,
	shiftRepository shift.ShiftRepository,
	geoSettingsRepository settings.GeoSettingsRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                    db,
		UserRepository:        userRepository,
		TimeLogRepository:     timeLogRepository,
		ShiftRepository:       shiftRepository,
		GeoSettingsRepository: geoSettingsRepository,
	}
}

// GetEmployeeData implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeData(ctx context.Context, userID int64) (dashboard.EmployeeDataResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return dashboard.EmployeeDataResponse{}, user.ErrUserNotFound
		}
		return dashboard.EmployeeDataResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	logs, err := s.TimeLogRepository.ListByUser(ctx, userID)
	if err != nil {
		return dashboard.EmployeeDataResponse{}, fmt.Errorf("failed to list time logs: %w", err)
	}

	shifts, geoSettings, err := s.sharedConfig(ctx)
	if err != nil {
		return dashboard.EmployeeDataResponse{}, err
	}

	return dashboard.EmployeeDataResponse{
		User:        user.ToResponse(userData),
		TimeLogs:    timelog.ToResponses(logs),
		Shifts:      shifts,
		GeoSettings: geoSettings,
	}, nil
}

// GetAllData implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAllData(ctx context.Context) (dashboard.AllDataResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return dashboard.AllDataResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	logs, err := s.TimeLogRepository.List(ctx)
	if err != nil {
		return dashboard.AllDataResponse{}, fmt.Errorf("failed to list time logs: %w", err)
	}

	shifts, geoSettings, err := s.sharedConfig(ctx)
	if err != nil {
		return dashboard.AllDataResponse{}, err
	}

	return dashboard.AllDataResponse{
		Users:       user.ToResponses(users),
		TimeLogs:    timelog.ToResponses(logs),
		Shifts:      shifts,
		GeoSettings: geoSettings,
	}, nil
}

func (s *DashboardServiceImpl) sharedConfig(ctx context.Context) ([]shift.Shift, settings.GeoSettings, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, settings.GeoSettings{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	geoSettings, err := s.GeoSettingsRepository.Get(ctx)
	if err != nil {
		return nil, settings.GeoSettings{}, fmt.Errorf("failed to get geofence settings: %w", err)
	}

	return shifts, geoSettings, nil
}
