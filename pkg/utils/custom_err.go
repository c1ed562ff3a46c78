package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileRequired    = errors.New("profile picture required")
	ErrLineupNotFound     = errors.New("lineup not found")
	ErrLineupLocked       = errors.New("lineup locked")
	ErrLineupNotOwned     = errors.New("submission belongs to another member")
	ErrLineupNotPending   = errors.New("lineup is not pending")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageError       = errors.New("storage error")
)
