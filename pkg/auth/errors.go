package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("auth.user_not_found")
	ErrEmailAlreadyExists = errors.New("auth.email_taken")
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	ErrStorage            = errors.New("auth.storage_failure")
)
