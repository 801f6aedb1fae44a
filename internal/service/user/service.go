package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
	"github.com/staffclock/attendance-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.ToResponses(users), nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(userData), nil
}

// Update implements user.UserService. Profile fields and the optional
// password change are applied in one transaction.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	var updated user.User

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = s.UserRepository.Update(txCtx, req)
		if err != nil {
			return err
		}

		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := s.UserRepository.UpdatePassword(txCtx, req.ID, string(hash)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == pgx.ErrNoRows || err == user.ErrUserNotFound {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if id == user.RootAdminID {
		return user.ErrRootAdminNotDeletable
	}
	return s.UserRepository.Delete(ctx, id)
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID int64, req user.ChangePasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}
