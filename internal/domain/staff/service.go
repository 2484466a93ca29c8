package staff

import (
	"context"
)

type StaffService interface {
	List(ctx context.Context, userID string) (StaffListResponse, error)
	Get(ctx context.Context, id string, userID string) (StaffResponse, error)
	Create(ctx context.Context, userID string, req CreateStaffRequest) (StaffResponse, error)
	Update(ctx context.Context, userID string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string, userID string) error
}
