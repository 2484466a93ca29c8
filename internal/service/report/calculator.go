package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// PayPolicy is the slice of a staff record the calculator needs. Salary
// amount is per hour/day/week/month depending on the type; overtime charges
// are always per hour.
type PayPolicy struct {
	SalaryType      staff.SalaryType
	SalaryAmount    decimal.Decimal
	OvertimeCharges decimal.Decimal
}

// DayEarnings is the earnings breakdown of a single attendance record.
type DayEarnings struct {
	RegularHours  float64
	OvertimeHours float64
	Basic         decimal.Decimal
	Overtime      decimal.Decimal
	Total         decimal.Decimal
}

// PeriodEarnings aggregates a period as the sum of its per-day components.
type PeriodEarnings struct {
	Basic              decimal.Decimal
	Overtime           decimal.Decimal
	Total              decimal.Decimal
	Advances           decimal.Decimal
	Net                decimal.Decimal
	TotalWorkedHours   float64
	TotalOvertimeHours float64
	Days               []DayEarnings
}

const (
	defaultPresentHours = 8.0
	defaultHalfDayHours = 4.0
)

var (
	half        = decimal.NewFromFloat(0.5)
	daysPerWeek = decimal.NewFromInt(7)
)

// regularHours derives the day's paid (non-overtime) hours. Precedence: a
// positive worked_hours override wins; otherwise in/out wall-clock times
// when both are set; otherwise a status default. Overnight shifts wrap:
// out < in means the shift ended the next day.
func regularHours(record attendance.Attendance) float64 {
	if record.WorkedHours > 0 {
		return record.WorkedHours
	}

	if record.InTime != nil && record.OutTime != nil {
		inMin, inOK := validator.ClockMinutes(*record.InTime)
		outMin, outOK := validator.ClockMinutes(*record.OutTime)
		if inOK && outOK {
			if outMin < inMin {
				outMin += 24 * 60
			}
			hours := float64(outMin-inMin) / 60.0
			if record.Status == attendance.StatusPresent {
				// The in/out span includes overtime; only the remainder is
				// paid at the regular rate. Half days never have overtime
				// so nothing is subtracted there.
				hours -= record.OvertimeHours
				if hours < 0 {
					hours = 0
				}
			}
			return hours
		}
	}

	if record.Status == attendance.StatusHalfDay {
		return defaultHalfDayHours
	}
	return defaultPresentHours
}

// CalculateDay computes one record's earnings under the policy.
// daysInMonth prorates monthly salaries.
//
// The pay multiplier scales only the basic component; overtime is added
// afterwards at the flat hourly charge. That asymmetry is the product
// contract: a double-rate holiday doubles base pay, not overtime.
func CalculateDay(policy PayPolicy, record attendance.Attendance, daysInMonth int) DayEarnings {
	if record.Status == attendance.StatusAbsent || record.Status == attendance.StatusOff {
		return DayEarnings{
			Basic:    decimal.Zero,
			Overtime: decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	hours := regularHours(record)

	var basic decimal.Decimal
	switch policy.SalaryType {
	case staff.SalaryHourly:
		basic = policy.SalaryAmount.Mul(decimal.NewFromFloat(hours))
	case staff.SalaryDaily:
		basic = policy.SalaryAmount
		if record.Status == attendance.StatusHalfDay {
			basic = basic.Mul(half)
		}
	case staff.SalaryWeekly:
		basic = policy.SalaryAmount.Div(daysPerWeek)
		if record.Status == attendance.StatusHalfDay {
			basic = basic.Mul(half)
		}
	case staff.SalaryMonthly:
		basic = policy.SalaryAmount.Div(decimal.NewFromInt(int64(daysInMonth)))
		if record.Status == attendance.StatusHalfDay {
			basic = basic.Mul(half)
		}
	}

	multiplier := record.PayMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}
	basic = basic.Mul(decimal.NewFromFloat(multiplier))

	overtime := decimal.Zero
	overtimeHours := 0.0
	if record.Status == attendance.StatusPresent && record.OvertimeHours > 0 {
		overtimeHours = record.OvertimeHours
		overtime = policy.OvertimeCharges.Mul(decimal.NewFromFloat(record.OvertimeHours))
	}

	return DayEarnings{
		RegularHours:  hours,
		OvertimeHours: overtimeHours,
		Basic:         basic,
		Overtime:      overtime,
		Total:         basic.Add(overtime),
	}
}

// CalculatePeriod computes per-day earnings for every record and sums them.
// Days is index-aligned with records.
func CalculatePeriod(policy PayPolicy, records []attendance.Attendance, month int, year int) PeriodEarnings {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	period := PeriodEarnings{
		Basic:    decimal.Zero,
		Overtime: decimal.Zero,
		Total:    decimal.Zero,
		Advances: decimal.Zero,
		Net:      decimal.Zero,
		Days:     make([]DayEarnings, 0, len(records)),
	}

	for _, record := range records {
		day := CalculateDay(policy, record, daysInMonth)
		period.Days = append(period.Days, day)

		period.Basic = period.Basic.Add(day.Basic)
		period.Overtime = period.Overtime.Add(day.Overtime)
		period.Total = period.Total.Add(day.Total)
		period.Advances = period.Advances.Add(record.AdvanceAmount)
		period.TotalWorkedHours += day.RegularHours
		period.TotalOvertimeHours += day.OvertimeHours
	}

	period.Net = period.Total.Sub(period.Advances)
	return period
}
