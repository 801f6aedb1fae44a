package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// RootAdminID is the user id of the administrative account seeded at
// installation. That account can never be deleted.
const RootAdminID int64 = 1

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Position     string
	StaffType    string
	WorkGroup    string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsRootAdmin checks if this is the seeded, non-deletable admin account.
func (u *User) IsRootAdmin() bool {
	return u.ID == RootAdminID
}
