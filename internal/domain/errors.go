package domain

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUserNotFound     = errors.New("user not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrInvalidUsername  = errors.New("username must be 3-20 characters: a-z, 0-9, and _ only")
	ErrUsernameTooShort = errors.New("username too short")
	ErrQuizCompleted    = errors.New("quiz already completed")
	ErrEmptyComment     = errors.New("comment content is required")
	ErrRateLimited      = errors.New("too many requests")
)
