package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrNoteNotFound   = errors.New("note not found")
)
