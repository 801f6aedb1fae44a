package response

import (
	"errors"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/domain/shift"
	"github.com/staffclock/attendance-backend-go/internal/domain/timelog"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrRootAdminNotDeletable):
		Forbidden(w, "The root admin account cannot be deleted")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Time log domain errors
	case errors.Is(err, timelog.ErrOutsideAllowedArea):
		Forbidden(w, "You are outside the allowed clock-in area")
	case errors.Is(err, timelog.ErrLocationRequired):
		BadRequest(w, "A location fix is required to clock in or out", nil)
	case errors.Is(err, timelog.ErrNotLogOwner):
		Forbidden(w, "Cannot record a clock event for another user")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
