package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staffclock/attendance-backend-go/internal/domain/report"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler. Year and month arrive as query
// parameters, e.g. /reports/monthly?year=2026&month=8.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	reportReq := report.MonthlyReportRequest{Year: year, Month: month}
	if err := reportReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	monthly, err := h.reportService.GenerateMonthlyReport(r.Context(), reportReq)
	if err != nil {
		slog.Error("Monthly report service error", "error", err, "year", year, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}
