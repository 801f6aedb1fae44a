package report

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

type Status string

const (
	StatusOnTime Status = "on_time"
	StatusLate   Status = "late"
	// StatusNoClockOut marks a day whose shift has ended without an "out"
	// event ever being recorded.
	StatusNoClockOut Status = "no_clock_out"
)

// Row is one employee-day in the monthly report.
type Row struct {
	Date         string  `json:"date"` // YYYY-MM-DD, local
	UserID       int64   `json:"userId"`
	Employee     string  `json:"employee"`
	Position     string  `json:"position"`
	Shift        string  `json:"shift"`
	ClockIn      string  `json:"clockIn"` // HH:MM:SS, local
	IPAddressIn  *string `json:"ipAddressIn,omitempty"`
	ClockOut     *string `json:"clockOut,omitempty"`
	IPAddressOut *string `json:"ipAddressOut,omitempty"`
	Status       Status  `json:"status"`

	// InTimestamp is the raw clock-in instant used for ordering.
	InTimestamp int64 `json:"inTimestamp"`
}

type MonthlyReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyReport struct {
	PeriodYear  int    `json:"periodYear"`
	PeriodMonth int    `json:"periodMonth"`
	GeneratedAt string `json:"generatedAt"`
	Rows        []Row  `json:"rows"`
}

type ReportService interface {
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
