package settings

import (
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

type UpdateGeoRequest struct {
	Center *Coordinate `json:"center"`
	Radius int         `json:"radius"`
}

func (r *UpdateGeoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Radius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius",
			Message: "radius must be a positive number of meters",
		})
	}

	if r.Center != nil {
		if !validator.IsValidLatitude(r.Center.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "center.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Center.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "center.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
