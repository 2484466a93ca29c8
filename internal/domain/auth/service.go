package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)
	Logout(ctx context.Context, token string)

	// DeleteAccount cancels any live gateway subscription best-effort, then
	// removes the tenant and all owned rows in a single transaction.
	DeleteAccount(ctx context.Context, userID string) error
}
