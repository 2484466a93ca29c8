package report

// AttendanceSummary counts days by status for the period. Present includes
// overtime days; Overtime counts present days with overtime hours.
type AttendanceSummary struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Overtime int `json:"overtime"`
	WeekOff  int `json:"week_off"`
	HalfDay  int `json:"half_day"`
}

// PaymentSummary aggregates the per-day earnings over the period. All
// amounts are rounded to 2 decimals at this boundary.
type PaymentSummary struct {
	BasicEarnings      float64 `json:"basic_earnings"`
	OvertimeEarnings   float64 `json:"overtime_earnings"`
	TotalEarnings      float64 `json:"total_earnings"`
	AdvancePayments    float64 `json:"advance_payments"`
	NetPayment         float64 `json:"net_payment"`
	TotalWorkedHours   float64 `json:"total_worked_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
}

// AttendanceDetail is one day of the report; Status is the display code.
type AttendanceDetail struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
	OvertimeHours float64 `json:"overtime_hours"`
	PayMultiplier float64 `json:"pay_multiplier"`
	AdvanceAmount float64 `json:"advance_amount"`
	DailyEarnings float64 `json:"daily_earnings"`
}

// LaborReportResponse is the full monthly report for one staff member.
type LaborReportResponse struct {
	StaffID           string             `json:"staff_id"`
	StaffName         string             `json:"staff_name"`
	PhoneNumber       string             `json:"phone_number"`
	SalaryType        string             `json:"salary_type"`
	SalaryAmount      float64            `json:"salary_amount"`
	OvertimeCharges   float64            `json:"overtime_charges"`
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	AttendanceSummary AttendanceSummary  `json:"attendance_summary"`
	PaymentSummary    PaymentSummary     `json:"payment_summary"`
	AttendanceDetails []AttendanceDetail `json:"attendance_details"`
}
