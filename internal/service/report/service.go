package report

import (
	"context"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/report"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	staffRepo      staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
) report.ReportService {
	return &ReportServiceImpl{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) GetLaborReport(ctx context.Context, userID, staffID string, month, year int) (report.LaborReportResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID, userID)
	if err != nil {
		return report.LaborReportResponse{}, err
	}

	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if !validator.IsValidMonth(month) {
		return report.LaborReportResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}
	if !validator.IsValidYear(year) {
		return report.LaborReportResponse{}, validator.ValidationErrors{
			{Field: "year", Message: "must be between 2000 and 2100"},
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	records, err := s.attendanceRepo.ListByStaffAndPeriod(ctx, staffID, from, to)
	if err != nil {
		return report.LaborReportResponse{}, err
	}

	policy := PayPolicy{
		SalaryType:      member.SalaryType,
		SalaryAmount:    member.SalaryAmount,
		OvertimeCharges: member.OvertimeCharges,
	}
	period := CalculatePeriod(policy, records, month, year)

	summary := report.AttendanceSummary{}
	details := make([]report.AttendanceDetail, 0, len(records))

	for i, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			summary.Present++
			if record.OvertimeHours > 0 {
				summary.Overtime++
			}
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusOff:
			summary.WeekOff++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}

		details = append(details, report.AttendanceDetail{
			ID:            record.ID,
			Date:          record.Date.Format("2006-01-02"),
			Status:        record.DisplayStatus(),
			InTime:        record.InTime,
			OutTime:       record.OutTime,
			OvertimeHours: record.OvertimeHours,
			PayMultiplier: record.PayMultiplier,
			AdvanceAmount: record.AdvanceAmount.Round(2).InexactFloat64(),
			DailyEarnings: period.Days[i].Total.Round(2).InexactFloat64(),
		})
	}

	return report.LaborReportResponse{
		StaffID:           member.ID,
		StaffName:         member.Name,
		PhoneNumber:       member.PhoneNumber,
		SalaryType:        string(member.SalaryType),
		SalaryAmount:      member.SalaryAmount.Round(2).InexactFloat64(),
		OvertimeCharges:   member.OvertimeCharges.Round(2).InexactFloat64(),
		Month:             month,
		Year:              year,
		AttendanceSummary: summary,
		PaymentSummary: report.PaymentSummary{
			BasicEarnings:      period.Basic.Round(2).InexactFloat64(),
			OvertimeEarnings:   period.Overtime.Round(2).InexactFloat64(),
			TotalEarnings:      period.Total.Round(2).InexactFloat64(),
			AdvancePayments:    period.Advances.Round(2).InexactFloat64(),
			NetPayment:         period.Net.Round(2).InexactFloat64(),
			TotalWorkedHours:   period.TotalWorkedHours,
			TotalOvertimeHours: period.TotalOvertimeHours,
		},
		AttendanceDetails: details,
	}, nil
}
