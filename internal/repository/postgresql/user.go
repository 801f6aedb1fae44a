package postgresql

import (
	"context"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, password_hash, first_name, last_name, position, staff_type, work_group, role, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Position,
		&u.StaffType,
		&u.WorkGroup,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByUsername implements user.UserRepository. The lookup is case-sensitive
// by design: case variants are distinct accounts.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	return scanUser(q.QueryRow(ctx, query, username))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, position, staff_type, work_group, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.LastName,
		newUser.Position,
		newUser.StaffType,
		newUser.WorkGroup,
		newUser.Role,
	))
}

// Update implements user.UserRepository. Only profile fields change here;
// password updates go through UpdatePassword.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, position = $3, staff_type = $4, work_group = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		req.FirstName,
		req.LastName,
		req.Position,
		req.StaffType,
		req.WorkGroup,
		req.ID,
	))
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
