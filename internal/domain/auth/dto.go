package auth

import (
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	StaffType string `json:"staffType"`
	WorkGroup string `json:"workGroup"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

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

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse carries the authenticated user (credentials stripped) and a
// bearer token for subsequent requests.
type LoginResponse struct {
	User        user.UserResponse `json:"user"`
	AccessToken string            `json:"accessToken"`
	ExpiresAt   int64             `json:"expiresAt"`
}
