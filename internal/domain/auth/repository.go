package auth

import (
	"context"
)

// UserRepository defines data access for tenant accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByMobile(ctx context.Context, mobile string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// Delete removes the tenant account row only; associated data is removed
	// by the owning domains inside the same transaction.
	Delete(ctx context.Context, id string) error
}
