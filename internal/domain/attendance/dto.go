package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	StaffID       string   `json:"staff_id"`
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	InTime        *string  `json:"in_time,omitempty"`
	OutTime       *string  `json:"out_time,omitempty"`
	WorkedHours   *float64 `json:"worked_hours,omitempty"`
	PayMultiplier *float64 `json:"pay_multiplier,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, off, half_day"})
	}
	if r.InTime != nil && !validator.IsValidClockTime(*r.InTime) {
		errs = append(errs, validator.ValidationError{Field: "in_time", Message: "must be a valid time (HH:MM)"})
	}
	if r.OutTime != nil && !validator.IsValidClockTime(*r.OutTime) {
		errs = append(errs, validator.ValidationError{Field: "out_time", Message: "must be a valid time (HH:MM)"})
	}
	if r.WorkedHours != nil && (*r.WorkedHours < 0 || *r.WorkedHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "worked_hours", Message: "must be between 0 and 24"})
	}
	if r.PayMultiplier != nil && (*r.PayMultiplier < 0 || *r.PayMultiplier > 10) {
		errs = append(errs, validator.ValidationError{Field: "pay_multiplier", Message: "must be between 0 and 10"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkOvertimeRequest struct {
	StaffID       string  `json:"staff_id"`
	Date          string  `json:"date"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func (r *MarkOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAdvanceRequest struct {
	StaffID string          `json:"staff_id"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Notes   *string         `json:"notes,omitempty"`
}

func (r *MarkAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the record shape returned by mark/mark-ot/advance.
type AttendanceResponse struct {
	ID            string  `json:"id"`
	StaffID       string  `json:"staff_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
	OvertimeHours float64 `json:"overtime_hours"`
	WorkedHours   float64 `json:"worked_hours"`
	PayMultiplier float64 `json:"pay_multiplier"`
	AdvanceAmount float64 `json:"advance_amount"`
}

// MonthAttendanceItem is one row of the month view; Status is the display
// code (OT/Off/P/HD/A) and Day the day of month.
type MonthAttendanceItem struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Day           int     `json:"day"`
	Status        string  `json:"status"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
	OvertimeHours float64 `json:"overtime_hours"`
	WorkedHours   float64 `json:"worked_hours"`
	PayMultiplier float64 `json:"pay_multiplier"`
	AdvanceAmount float64 `json:"advance_amount"`
}

type MonthSummary struct {
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Overtime     int     `json:"overtime"`
	AdvanceTotal float64 `json:"advance_total"`
}

type MonthAttendanceResponse struct {
	StaffID     string                `json:"staff_id"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	Summary     MonthSummary          `json:"summary"`
	Attendances []MonthAttendanceItem `json:"attendances"`
}
