package timelog

import "errors"

var (
	ErrOutsideAllowedArea = errors.New("you are outside the allowed clock-in area")
	ErrLocationRequired   = errors.New("a location fix is required to clock in or out")
	ErrNotLogOwner        = errors.New("cannot record a clock event for another user")
)
