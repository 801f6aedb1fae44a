package dashboard

import (
	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

// EmployeeDataResponse is the bundle an employee's dashboard loads in one
// request: their own history plus the shared shift and geofence config.
type EmployeeDataResponse struct {
	User        user.UserResponse    `json:"user"`
	TimeLogs    []timelog.Response   `json:"timeLogs"`
	Shifts      []shift.Shift        `json:"shifts"`
	GeoSettings settings.GeoSettings `json:"geoSettings"`
}

// AllDataResponse is the admin dashboard bundle covering every account.
type AllDataResponse struct {
	Users       []user.UserResponse  `json:"users"`
	TimeLogs    []timelog.Response   `json:"timeLogs"`
	Shifts      []shift.Shift        `json:"shifts"`
	GeoSettings settings.GeoSettings `json:"geoSettings"`
}
