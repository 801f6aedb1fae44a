package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetGeo(w http.ResponseWriter, r *http.Request)
	UpdateGeo(w http.ResponseWriter, r *http.Request)
	UpdateShiftGracePeriods(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetGeo implements SettingsHandler.
func (s *SettingsHandlerImpl) GetGeo(w http.ResponseWriter, r *http.Request) {
	geo, err := s.settingsService.GetGeo(r.Context())
	if err != nil {
		slog.Error("Geo settings get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, geo)
}

// UpdateGeo implements SettingsHandler.
func (s *SettingsHandlerImpl) UpdateGeo(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateGeoRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Geo settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	geo, err := s.settingsService.UpdateGeo(r.Context(), updateReq)
	if err != nil {
		slog.Error("Geo settings update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Geofence settings updated", "radius", geo.Radius, "configured", geo.Configured())
	response.SuccessWithMessage(w, "Geofence settings updated", geo)
}

// UpdateShiftGracePeriods implements SettingsHandler.
func (s *SettingsHandlerImpl) UpdateShiftGracePeriods(w http.ResponseWriter, r *http.Request) {
	var updateReq shift.UpdateGracePeriodsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Shift settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	shifts, err := s.settingsService.UpdateShiftGracePeriods(r.Context(), updateReq)
	if err != nil {
		slog.Error("Shift settings update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift grace periods updated", "count", len(updateReq))
	response.SuccessWithMessage(w, "Shift settings updated", shifts)
}
