package middleware

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

// UserIDFromContext extracts the authenticated user's id from the verified
// token in the request context. Numeric claims come back from JSON decoding
// in more than one representation, so all of them are accepted.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, false
	}

	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return id, true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// RoleFromContext extracts the authenticated user's role claim.
func RoleFromContext(ctx context.Context) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(role), true
}
