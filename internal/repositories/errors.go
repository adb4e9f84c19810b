package repositories

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrRecordNotFound    = errors.New("record not found")
	ErrVersionConflict   = errors.New("record was modified by another request")
	ErrDatabaseOperation = errors.New("database operation failed")
)
