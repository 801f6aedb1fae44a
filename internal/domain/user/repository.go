package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
