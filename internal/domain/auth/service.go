package auth

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	// Register creates a new employee account. Duplicate usernames are
	// rejected; the comparison is case-sensitive.
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
