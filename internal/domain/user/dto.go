package user

import (
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses. The password hash is
// never part of any response shape.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	StaffType string `json:"staffType"`
	WorkGroup string `json:"workGroup"`
	Role      string `json:"role"`
}

// ToResponse strips credentials from a user entity.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Position:  u.Position,
		StaffType: u.StaffType,
		WorkGroup: u.WorkGroup,
		Role:      string(u.Role),
	}
}

// ToResponses maps a user list, dropping password hashes.
func ToResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}

// UpdateUserRequest represents an admin edit of a user's profile fields.
// Password is only re-hashed when non-empty.
type UpdateUserRequest struct {
	ID        int64  `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	StaffType string `json:"staffType"`
	WorkGroup string `json:"workGroup"`
	Password  string `json:"password,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ChangePasswordRequest is used by an admin to reset their own password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
