package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryType is the rate basis a staff member is paid on. SalaryAmount's
// meaning depends on it: per hour, per day, per week or per month.
type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryDaily   SalaryType = "daily"
	SalaryWeekly  SalaryType = "weekly"
	SalaryMonthly SalaryType = "monthly"
)

// SalaryTypes lists the accepted salary_type values for validation.
var SalaryTypes = []string{
	string(SalaryHourly),
	string(SalaryDaily),
	string(SalaryWeekly),
	string(SalaryMonthly),
}

// Staff is a worker employed by one tenant. OvertimeCharges is always an
// hourly rate regardless of SalaryType.
type Staff struct {
	ID              string
	UserID          string
	Name            string
	PhoneNumber     string
	SalaryType      SalaryType
	SalaryAmount    decimal.Decimal
	OvertimeCharges decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
