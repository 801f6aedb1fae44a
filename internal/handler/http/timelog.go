package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type TimeLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type TimeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService) TimeLogHandler {
	return &TimeLogHandlerImpl{
		timeLogService: timeLogService,
	}
}

// Create implements TimeLogHandler.
func (t *TimeLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq timelog.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("TimeLog create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// The IP address is best-effort. When the client did not supply one,
	// fall back to the connection's remote address.
	if createReq.IPAddress == nil || *createReq.IPAddress == "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			createReq.IPAddress = &host
		}
	}

	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	actorRole, _ := middleware.RoleFromContext(r.Context())

	created, err := t.timeLogService.Create(r.Context(), createReq, actorID, actorRole)
	if err != nil {
		slog.Error("TimeLog create service error", "error", err, "user_id", createReq.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock event recorded", "user_id", created.UserID, "type", created.Type)
	response.Created(w, "Clock event recorded", created)
}

// Status implements TimeLogHandler.
func (t *TimeLogHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	status, err := t.timeLogService.Status(r.Context(), actorID)
	if err != nil {
		slog.Error("TimeLog status service error", "error", err, "user_id", actorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
