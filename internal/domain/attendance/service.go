package attendance

import (
	"context"
)

type AttendanceService interface {
	// Mark upserts the record for (staff, date); marking twice with the same
	// payload yields one record whose state equals the last payload.
	Mark(ctx context.Context, userID string, req MarkAttendanceRequest) (AttendanceResponse, error)

	// MarkOvertime requires an existing record already marked present.
	MarkOvertime(ctx context.Context, userID string, req MarkOvertimeRequest) (AttendanceResponse, error)

	// MarkAdvance records an advance for the date. With no existing record
	// it creates an absent placeholder carrying the advance.
	MarkAdvance(ctx context.Context, userID string, req MarkAdvanceRequest) (AttendanceResponse, error)

	// GetMonth returns the staff member's records and summary for a month.
	// Month/year of zero default to the current month/year.
	GetMonth(ctx context.Context, userID string, staffID string, month, year int) (MonthAttendanceResponse, error)
}
