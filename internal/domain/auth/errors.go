package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("the provided credentials are incorrect")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrMobileExists       = errors.New("mobile number already registered")
)
