package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBanned      = errors.New("your account has been banned")
	ErrAccountBlocked     = errors.New("your account has been blocked")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailBanned        = errors.New("this email has been banned")

	ErrUserNotFound   = errors.New("user not found")
	ErrAdminImmutable = errors.New("the admin account cannot be modified")

	ErrChatSessionNotFound  = errors.New("chat session not found")
	ErrChatSessionForbidden = errors.New("you do not own this chat session")
)
