package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Username validation: 3-50 chars, A-Z, a-z, 0-9, ., _, -
// Usernames are compared case-sensitively; no normalization happens here.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Clock validation for "HH:MM" time-of-day strings, as stored on shifts.
func IsValidClock(clock string) bool {
	_, err := time.Parse("15:04", clock)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidLatitude reports whether lat is a usable latitude in degrees.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is a usable longitude in degrees.
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
