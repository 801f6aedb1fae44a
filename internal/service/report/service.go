package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffclock/attendance-backend-go/internal/domain/report"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db *database.DB
	timelog.TimeLogRepository
	user.UserRepository
	shift.ShiftRepository

	// now and loc are swappable for tests; production wiring uses
	// time.Now and the server's local zone.
	now func() time.Time
	loc *time.Location
}

func NewReportService(
	db *database.DB,
	timeLogRepository timelog.TimeLogRepository,
	userRepository user.UserRepository,
	shiftRepository shift.ShiftRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:                db,
		TimeLogRepository: timeLogRepository,
		UserRepository:    userRepository,
		ShiftRepository:   shiftRepository,
		now:               time.Now,
		loc:               time.Local,
	}
}

// GenerateMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	month := time.Month(req.Month)

	logs, err := s.TimeLogRepository.ListByMonth(ctx, req.Year, month, s.loc)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list time logs: %w", err)
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	now := s.now()
	rows := report.BuildMonthly(logs, users, shifts, req.Year, month, now, s.loc)

	return report.MonthlyReport{
		PeriodYear:  req.Year,
		PeriodMonth: req.Month,
		GeneratedAt: now.In(s.loc).Format(time.RFC3339),
		Rows:        rows,
	}, nil
}
