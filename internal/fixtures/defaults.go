package fixtures

import (
	"github.com/staffclock/attendance-backend-go/internal/domain/settings"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

// DefaultShifts returns the three fixed work periods of a new install. The
// start/end pairs anchor shift-window classification and are not editable
// through the API; only the grace periods change at runtime.
func DefaultShifts() []shift.Shift {
	return []shift.Shift{
		{ID: 1, Name: "Morning", StartTime: "08:30", EndTime: "16:30", LateGracePeriod: 15},
		{ID: 2, Name: "Afternoon", StartTime: "16:30", EndTime: "00:30", LateGracePeriod: 15},
		{ID: 3, Name: "Night", StartTime: "00:30", EndTime: "08:30", LateGracePeriod: 15},
	}
}

// DefaultGeoSettings returns the singleton geofence row before an admin has
// configured a center: no fence enforcement, 100 meter radius placeholder.
func DefaultGeoSettings() settings.GeoSettings {
	return settings.GeoSettings{Center: nil, Radius: 100}
}

// RootAdmin returns the seeded administrative account. Its id is fixed and
// the account can never be deleted. The password hash is filled in by the
// seeder from the configured recovery password.
func RootAdmin() user.User {
	return user.User{
		ID:        user.RootAdminID,
		Username:  "admin",
		FirstName: "System",
		LastName:  "Administrator",
		Position:  "Administrator",
		StaffType: "Permanent",
		WorkGroup: "Management",
		Role:      user.RoleAdmin,
	}
}
