package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the attendance state for one (staff, date) pair.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusOff     Status = "off"
	StatusHalfDay Status = "half_day"
)

// Statuses lists the accepted status values for validation.
var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusOff),
	string(StatusHalfDay),
}

// Attendance is one record per staff member per calendar date; the store
// enforces uniqueness on (staff_id, date).
//
// InTime/OutTime are wall-clock "HH:MM" values with no date or timezone.
// WorkedHours is a manual override of the in/out derivation (0 = unset).
// PayMultiplier scales that day's basic earnings only, never overtime.
// AdvanceAmount is money handed to the staff member against this date,
// regardless of attendance status.
type Attendance struct {
	ID            string
	StaffID       string
	Date          time.Time
	Status        Status
	InTime        *string
	OutTime       *string
	WorkedHours   float64
	OvertimeHours float64
	PayMultiplier float64
	AdvanceAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayStatus maps the stored status to the short code clients render:
// a present day with overtime shows as "OT", otherwise "P", and so on.
func (a Attendance) DisplayStatus() string {
	switch {
	case a.Status == StatusPresent && a.OvertimeHours > 0:
		return "OT"
	case a.Status == StatusOff:
		return "Off"
	case a.Status == StatusPresent:
		return "P"
	case a.Status == StatusHalfDay:
		return "HD"
	case a.Status == StatusAbsent:
		return "A"
	}
	return string(a.Status)
}

// AdvanceEntry is the slim projection of an advance-carrying attendance row
// used by the cashbook ledger.
type AdvanceEntry struct {
	AttendanceID string
	Date         time.Time
	StaffName    string
	Amount       decimal.Decimal
}
