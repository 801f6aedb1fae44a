package http

import (
	"log/slog"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/domain/dashboard"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeData(w http.ResponseWriter, r *http.Request)
	GetAllData(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetEmployeeData implements DashboardHandler. Employees can only load
// their own bundle; admins can load anyone's.
func (d *DashboardHandlerImpl) GetEmployeeData(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	actorRole, _ := middleware.RoleFromContext(r.Context())

	if id != actorID && actorRole != user.RoleAdmin {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	data, err := d.dashboardService.GetEmployeeData(r.Context(), id)
	if err != nil {
		slog.Error("Employee data service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// GetAllData implements DashboardHandler.
func (d *DashboardHandlerImpl) GetAllData(w http.ResponseWriter, r *http.Request) {
	data, err := d.dashboardService.GetAllData(r.Context())
	if err != nil {
		slog.Error("All data service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
