package user

import (
	"context"
)

type UserService interface {
	// List returns every account with credentials stripped.
	List(ctx context.Context) ([]UserResponse, error)

	// Get returns one account by id.
	Get(ctx context.Context, id int64) (UserResponse, error)

	// Update edits profile fields and, when a password is supplied,
	// replaces the stored credential.
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes an account. The seeded root admin is protected.
	Delete(ctx context.Context, id int64) error

	// ChangePassword replaces the caller's own credential.
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
}
