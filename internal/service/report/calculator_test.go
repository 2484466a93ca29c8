package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
)

func hourlyPolicy(rate, otCharges float64) PayPolicy {
	return PayPolicy{
		SalaryType:      staff.SalaryHourly,
		SalaryAmount:    decimal.NewFromFloat(rate),
		OvertimeCharges: decimal.NewFromFloat(otCharges),
	}
}

func strPtr(s string) *string { return &s }

func TestCalculateDay_HourlyWithInOutAndOvertime(t *testing.T) {
	t.Parallel()

	// 09:00-19:00 is 10h; 2h of that is overtime, so 8h regular.
	// basic = 8*100 = 800, overtime = 2*50 = 100.
	day := CalculateDay(hourlyPolicy(100, 50), attendance.Attendance{
		Status:        attendance.StatusPresent,
		InTime:        strPtr("09:00"),
		OutTime:       strPtr("19:00"),
		OvertimeHours: 2,
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 8.0, day.RegularHours)
	assert.Equal(t, 800.0, day.Basic.InexactFloat64())
	assert.Equal(t, 100.0, day.Overtime.InexactFloat64())
	assert.Equal(t, 900.0, day.Total.InexactFloat64())
}

func TestCalculateDay_OvernightShiftWraps(t *testing.T) {
	t.Parallel()

	// 22:00-06:00 crosses midnight: 8 hours, not -16.
	day := CalculateDay(hourlyPolicy(100, 0), attendance.Attendance{
		Status:        attendance.StatusPresent,
		InTime:        strPtr("22:00"),
		OutTime:       strPtr("06:00"),
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 8.0, day.RegularHours)
	assert.Equal(t, 800.0, day.Basic.InexactFloat64())
}

func TestCalculateDay_WorkedHoursOverrideWins(t *testing.T) {
	t.Parallel()

	// Manual worked_hours beats the in/out derivation entirely.
	day := CalculateDay(hourlyPolicy(100, 50), attendance.Attendance{
		Status:        attendance.StatusPresent,
		InTime:        strPtr("09:00"),
		OutTime:       strPtr("19:00"),
		WorkedHours:   6,
		OvertimeHours: 2,
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 6.0, day.RegularHours)
	assert.Equal(t, 600.0, day.Basic.InexactFloat64())
	assert.Equal(t, 100.0, day.Overtime.InexactFloat64())
}

func TestCalculateDay_DefaultHoursWhenNoTimes(t *testing.T) {
	t.Parallel()

	present := CalculateDay(hourlyPolicy(100, 0), attendance.Attendance{
		Status:        attendance.StatusPresent,
		PayMultiplier: 1.0,
	}, 30)
	assert.Equal(t, 8.0, present.RegularHours)

	halfDay := CalculateDay(hourlyPolicy(100, 0), attendance.Attendance{
		Status:        attendance.StatusHalfDay,
		PayMultiplier: 1.0,
	}, 30)
	assert.Equal(t, 4.0, halfDay.RegularHours)
}

func TestCalculateDay_HalfDayNoOvertimeSubtraction(t *testing.T) {
	t.Parallel()

	// Half days never subtract overtime from the in/out span.
	day := CalculateDay(hourlyPolicy(100, 50), attendance.Attendance{
		Status:        attendance.StatusHalfDay,
		InTime:        strPtr("09:00"),
		OutTime:       strPtr("13:00"),
		OvertimeHours: 2,
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 4.0, day.RegularHours)
	// Overtime pay only applies to present days.
	assert.True(t, day.Overtime.IsZero())
}

func TestCalculateDay_RegularHoursFlooredAtZero(t *testing.T) {
	t.Parallel()

	// Overtime exceeding the whole span must not drive hours negative.
	day := CalculateDay(hourlyPolicy(100, 50), attendance.Attendance{
		Status:        attendance.StatusPresent,
		InTime:        strPtr("09:00"),
		OutTime:       strPtr("11:00"),
		OvertimeHours: 5,
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 0.0, day.RegularHours)
	assert.True(t, day.Basic.IsZero())
	assert.Equal(t, 250.0, day.Overtime.InexactFloat64())
}

func TestCalculateDay_AbsentAndOffEarnNothing(t *testing.T) {
	t.Parallel()

	for _, status := range []attendance.Status{attendance.StatusAbsent, attendance.StatusOff} {
		day := CalculateDay(hourlyPolicy(100, 50), attendance.Attendance{
			Status:        status,
			OvertimeHours: 3,
			PayMultiplier: 2.0,
		}, 30)

		assert.True(t, day.Total.IsZero(), "status %s must earn zero", status)
	}
}

func TestCalculateDay_DailySalary(t *testing.T) {
	t.Parallel()

	policy := PayPolicy{
		SalaryType:      staff.SalaryDaily,
		SalaryAmount:    decimal.NewFromInt(500),
		OvertimeCharges: decimal.NewFromInt(60),
	}

	present := CalculateDay(policy, attendance.Attendance{
		Status:        attendance.StatusPresent,
		PayMultiplier: 1.0,
	}, 30)
	assert.Equal(t, 500.0, present.Basic.InexactFloat64())

	halfDay := CalculateDay(policy, attendance.Attendance{
		Status:        attendance.StatusHalfDay,
		PayMultiplier: 1.0,
	}, 30)
	assert.Equal(t, 250.0, halfDay.Basic.InexactFloat64())
}

func TestCalculateDay_WeeklySalaryProrated(t *testing.T) {
	t.Parallel()

	policy := PayPolicy{
		SalaryType:   staff.SalaryWeekly,
		SalaryAmount: decimal.NewFromInt(700),
	}

	day := CalculateDay(policy, attendance.Attendance{
		Status:        attendance.StatusPresent,
		PayMultiplier: 1.0,
	}, 30)

	assert.Equal(t, 100.0, day.Basic.InexactFloat64())
}

func TestCalculateDay_MonthlySalaryProratedByDaysInMonth(t *testing.T) {
	t.Parallel()

	policy := PayPolicy{
		SalaryType:   staff.SalaryMonthly,
		SalaryAmount: decimal.NewFromInt(30000),
	}

	feb := CalculateDay(policy, attendance.Attendance{
		Status:        attendance.StatusPresent,
		PayMultiplier: 1.0,
	}, 28)
	assert.InDelta(t, 30000.0/28, feb.Basic.InexactFloat64(), 0.0001)

	jan := CalculateDay(policy, attendance.Attendance{
		Status:        attendance.StatusPresent,
		PayMultiplier: 1.0,
	}, 31)
	assert.InDelta(t, 30000.0/31, jan.Basic.InexactFloat64(), 0.0001)
}

func TestCalculateDay_MultiplierScalesBasicOnly(t *testing.T) {
	t.Parallel()

	record := attendance.Attendance{
		Status:        attendance.StatusPresent,
		OvertimeHours: 2,
		PayMultiplier: 2.0,
	}
	policy := PayPolicy{
		SalaryType:      staff.SalaryDaily,
		SalaryAmount:    decimal.NewFromInt(500),
		OvertimeCharges: decimal.NewFromInt(50),
	}

	day := CalculateDay(policy, record, 30)

	// Basic doubled, overtime untouched.
	assert.Equal(t, 1000.0, day.Basic.InexactFloat64())
	assert.Equal(t, 100.0, day.Overtime.InexactFloat64())

	record.PayMultiplier = 1.0
	baseline := CalculateDay(policy, record, 30)
	assert.Equal(t, baseline.Overtime.InexactFloat64(), day.Overtime.InexactFloat64())
}

func TestCalculateDay_ZeroMultiplierDefaultsToOne(t *testing.T) {
	t.Parallel()

	// Rows written before the multiplier existed carry 0; treat as 1.0.
	day := CalculateDay(hourlyPolicy(100, 0), attendance.Attendance{
		Status: attendance.StatusPresent,
	}, 30)

	assert.Equal(t, 800.0, day.Basic.InexactFloat64())
}

func TestCalculatePeriod_AggregatesAreSumOfDays(t *testing.T) {
	t.Parallel()

	policy := PayPolicy{
		SalaryType:      staff.SalaryDaily,
		SalaryAmount:    decimal.NewFromInt(500),
		OvertimeCharges: decimal.NewFromInt(50),
	}

	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, PayMultiplier: 1.0},
		{Status: attendance.StatusPresent, OvertimeHours: 2, PayMultiplier: 1.0},
		{Status: attendance.StatusHalfDay, PayMultiplier: 1.0},
		{Status: attendance.StatusAbsent, PayMultiplier: 1.0, AdvanceAmount: decimal.NewFromInt(300)},
		{Status: attendance.StatusOff, PayMultiplier: 1.0},
	}

	period := CalculatePeriod(policy, records, 6, 2026)

	// 500 + 500 + 250 = 1250 basic; 2*50 = 100 overtime.
	assert.Equal(t, 1250.0, period.Basic.InexactFloat64())
	assert.Equal(t, 100.0, period.Overtime.InexactFloat64())
	assert.Equal(t, 1350.0, period.Total.InexactFloat64())
	assert.Equal(t, 300.0, period.Advances.InexactFloat64())
	assert.Equal(t, 1050.0, period.Net.InexactFloat64())
	assert.Equal(t, 2.0, period.TotalOvertimeHours)
	assert.Len(t, period.Days, len(records))

	sum := decimal.Zero
	for _, day := range period.Days {
		sum = sum.Add(day.Total)
	}
	assert.True(t, sum.Equal(period.Total))
}

func TestCalculatePeriod_MonthlyFullAttendanceEqualsSalary(t *testing.T) {
	t.Parallel()

	policy := PayPolicy{
		SalaryType:   staff.SalaryMonthly,
		SalaryAmount: decimal.NewFromInt(31000),
	}

	// All 30 days of June present: prorated days must sum back to salary.
	records := make([]attendance.Attendance, 30)
	for i := range records {
		records[i] = attendance.Attendance{Status: attendance.StatusPresent, PayMultiplier: 1.0}
	}

	period := CalculatePeriod(policy, records, 6, 2026)

	assert.InDelta(t, 31000.0, period.Basic.Round(2).InexactFloat64(), 0.01)
}
