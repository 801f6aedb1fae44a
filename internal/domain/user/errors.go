package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrRootAdminNotDeletable  = errors.New("the root admin account cannot be deleted")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
