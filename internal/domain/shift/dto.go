package shift

import (
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

// GracePeriodUpdate adjusts the lateness grace of one shift. Start and end
// times are not editable through the API.
type GracePeriodUpdate struct {
	ID              int64 `json:"id"`
	LateGracePeriod int   `json:"lateGracePeriod"`
}

type UpdateGracePeriodsRequest []GracePeriodUpdate

func (r UpdateGracePeriodsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "at least one shift is required",
		})
	}

	for _, u := range r {
		if u.ID <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "id",
				Message: "shift id is required",
			})
		}
		if u.LateGracePeriod < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "lateGracePeriod",
				Message: "lateGracePeriod must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
