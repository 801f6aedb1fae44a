package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffclock/attendance-backend-go/internal/config"
	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
	"github.com/staffclock/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	recovery config.AuthConfig
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, recovery config.AuthConfig) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		recovery:       recovery,
	}
}

// Register implements auth.AuthService. New accounts always get the employee
// role; admins are promoted out of band.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	exists, err := a.UserRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		StaffType:    req.StaffType,
		WorkGroup:    req.WorkGroup,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		if !a.tryRecovery(ctx, &userData, req.Password) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		User:        user.ToResponse(userData),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// tryRecovery repairs the root admin credential when its stored hash no
// longer matches the configured recovery password. Only the seeded admin
// account qualifies, and only while recovery is enabled. On success the
// presented password is re-hashed and stored, replacing the broken hash.
func (a *AuthServiceImpl) tryRecovery(ctx context.Context, userData *user.User, password string) bool {
	if !a.recovery.RecoveryEnabled {
		return false
	}
	if !userData.IsRootAdmin() || password != a.recovery.RecoveryPassword {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false
	}
	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, string(hash)); err != nil {
		slog.Error("root admin credential repair failed", "error", err)
		return false
	}
	userData.PasswordHash = string(hash)

	slog.Warn("root admin credential repaired via recovery password",
		"user_id", userData.ID,
		"username", userData.Username,
	)
	return true
}
