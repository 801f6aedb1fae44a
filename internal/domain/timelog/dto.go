package timelog

import (
	"github.com/staffclock/attendance-backend-go/internal/pkg/validator"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateRequest records one clock event. A location fix is mandatory: the
// geofence cannot be evaluated without it. The IP address is best-effort.
type CreateRequest struct {
	UserID    int64     `json:"userId"`
	Timestamp int64     `json:"timestamp"`
	Type      string    `json:"type"`
	Location  *Location `json:"location"`
	IPAddress *string   `json:"ipAddress,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if r.Timestamp <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a Unix millisecond value",
		})
	}

	if r.Type != string(TypeIn) && r.Type != string(TypeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}

	if r.Location == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required to record a clock event",
		})
	} else {
		if !validator.IsValidLatitude(r.Location.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Location.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	Timestamp int64    `json:"timestamp"`
	Type      string   `json:"type"`
	Location  Location `json:"location"`
	IPAddress *string  `json:"ipAddress,omitempty"`

	// DistanceMeters is the distance to the geofence center at the time of
	// the event, echoed back for the confirmation screen. Absent when no
	// center is configured.
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

func ToResponse(l TimeLog) Response {
	return Response{
		ID:        l.ID,
		UserID:    l.UserID,
		Timestamp: l.Timestamp,
		Type:      string(l.Type),
		Location:  Location{Latitude: l.Latitude, Longitude: l.Longitude},
		IPAddress: l.IPAddress,
	}
}

func ToResponses(logs []TimeLog) []Response {
	out := make([]Response, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToResponse(l))
	}
	return out
}

// StatusResponse is the derived attendance state for one employee.
type StatusResponse struct {
	ClockedIn            bool      `json:"clockedIn"`
	CanClockOut          bool      `json:"canClockOut"`
	LastLog              *Response `json:"lastLog,omitempty"`
	RemainingWaitHours   int       `json:"remainingWaitHours"`
	RemainingWaitMinutes int       `json:"remainingWaitMinutes"`
}

func ToStatusResponse(s State) StatusResponse {
	resp := StatusResponse{
		ClockedIn:            s.ClockedIn,
		CanClockOut:          s.CanClockOut,
		RemainingWaitHours:   s.RemainingWaitHours,
		RemainingWaitMinutes: s.RemainingWaitMinutes,
	}
	if s.LastLog != nil {
		last := ToResponse(*s.LastLog)
		resp.LastLog = &last
	}
	return resp
}
