package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access for attendance records. Tenant
// isolation rides on staff ownership, which callers verify before writing;
// read methods that span staff take the tenant's userID explicitly.
type AttendanceRepository interface {
	// Upsert inserts or updates the record for (staff, date) atomically.
	// The store's uniqueness constraint on (staff_id, date) is the sole
	// arbiter when concurrent marks race.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// GetByStaffAndDate returns nil when no record exists for the date.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	SetOvertime(ctx context.Context, id string, overtimeHours float64) (Attendance, error)
	SetAdvance(ctx context.Context, id string, amount decimal.Decimal) (Attendance, error)

	// ListByStaffAndPeriod returns the staff member's records with
	// from <= date < to, ordered by date ascending.
	ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]Attendance, error)

	// SumAdvancesByUserAndPeriod totals advance_amount > 0 across all of the
	// tenant's staff for the period.
	SumAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)

	// ListAdvancesByUserAndPeriod returns advance-carrying records joined
	// with staff names, ordered by date ascending, for the cashbook ledger.
	ListAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]AdvanceEntry, error)

	// DeleteAllByUser removes all attendance of the tenant's staff; used
	// inside the account-deletion transaction.
	DeleteAllByUser(ctx context.Context, userID string) error
}
