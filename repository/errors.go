package repository

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyReply         = errors.New("reply text is required")
	ErrEmptyText          = errors.New("post text is required")
	ErrTextTooLong        = errors.New("post text exceeds 280 characters")
)
