package staff

import (
	"context"
)

// StaffRepository defines data access for staff records. Every method takes
// the owning tenant's userID explicitly; there is no ambient tenant state.
type StaffRepository interface {
	Create(ctx context.Context, member Staff) (Staff, error)

	// GetByID returns ErrStaffNotFound when the record is absent or owned by
	// another tenant.
	GetByID(ctx context.Context, id string, userID string) (Staff, error)

	// ListByUser returns the tenant's staff, newest first.
	ListByUser(ctx context.Context, userID string) ([]Staff, error)

	Update(ctx context.Context, member Staff) error
	Delete(ctx context.Context, id string, userID string) error

	// DeleteAllByUser removes every staff row of the tenant; used inside the
	// account-deletion transaction.
	DeleteAllByUser(ctx context.Context, userID string) error
}
