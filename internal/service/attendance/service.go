package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, userID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, userID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	record := attendance.Attendance{
		StaffID:       req.StaffID,
		Date:          date,
		Status:        attendance.Status(req.Status),
		PayMultiplier: 1.0,
	}

	// Clock times only make sense on worked days; marking a day absent or
	// off wipes any previously stored times.
	if record.Status == attendance.StatusPresent || record.Status == attendance.StatusHalfDay {
		record.InTime = req.InTime
		record.OutTime = req.OutTime
	}
	if req.WorkedHours != nil {
		record.WorkedHours = *req.WorkedHours
	}
	if req.PayMultiplier != nil {
		record.PayMultiplier = *req.PayMultiplier
	}

	// A re-mark must not silently drop overtime or advances already
	// recorded for the day.
	existing, err := s.attendanceRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		record.AdvanceAmount = existing.AdvanceAmount
		if record.Status == attendance.StatusPresent {
			record.OvertimeHours = existing.OvertimeHours
		}
	}

	saved, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) MarkOvertime(ctx context.Context, userID string, req attendance.MarkOvertimeRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, userID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.attendanceRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	if existing.Status != attendance.StatusPresent {
		return attendance.AttendanceResponse{}, attendance.ErrOvertimeRequiresPresent
	}

	saved, err := s.attendanceRepo.SetOvertime(ctx, existing.ID, req.OvertimeHours)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) MarkAdvance(ctx context.Context, userID string, req attendance.MarkAdvanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, userID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.attendanceRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if existing == nil {
		// No record yet: create an absent placeholder carrying the advance.
		// An advance is money out the door regardless of whether the day
		// was ever marked.
		saved, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
			StaffID:       req.StaffID,
			Date:          date,
			Status:        attendance.StatusAbsent,
			PayMultiplier: 1.0,
			AdvanceAmount: req.Amount,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return toAttendanceResponse(saved), nil
	}

	saved, err := s.attendanceRepo.SetAdvance(ctx, existing.ID, req.Amount)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) GetMonth(ctx context.Context, userID string, staffID string, month, year int) (attendance.MonthAttendanceResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID, userID); err != nil {
		return attendance.MonthAttendanceResponse{}, err
	}

	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if !validator.IsValidMonth(month) {
		return attendance.MonthAttendanceResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}
	if !validator.IsValidYear(year) {
		return attendance.MonthAttendanceResponse{}, validator.ValidationErrors{
			{Field: "year", Message: "must be between 2000 and 2100"},
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	records, err := s.attendanceRepo.ListByStaffAndPeriod(ctx, staffID, from, to)
	if err != nil {
		return attendance.MonthAttendanceResponse{}, err
	}

	items := make([]attendance.MonthAttendanceItem, 0, len(records))
	summary := attendance.MonthSummary{}
	advanceTotal := decimal.Zero

	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			summary.Present++
			if record.OvertimeHours > 0 {
				summary.Overtime++
			}
		case attendance.StatusAbsent:
			summary.Absent++
		}
		advanceTotal = advanceTotal.Add(record.AdvanceAmount)

		items = append(items, attendance.MonthAttendanceItem{
			ID:            record.ID,
			Date:          record.Date.Format("2006-01-02"),
			Day:           record.Date.Day(),
			Status:        record.DisplayStatus(),
			InTime:        record.InTime,
			OutTime:       record.OutTime,
			OvertimeHours: record.OvertimeHours,
			WorkedHours:   record.WorkedHours,
			PayMultiplier: record.PayMultiplier,
			AdvanceAmount: record.AdvanceAmount.Round(2).InexactFloat64(),
		})
	}

	summary.AdvanceTotal = advanceTotal.Round(2).InexactFloat64()

	return attendance.MonthAttendanceResponse{
		StaffID:     staffID,
		Month:       month,
		Year:        year,
		Summary:     summary,
		Attendances: items,
	}, nil
}

func toAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            record.ID,
		StaffID:       record.StaffID,
		Date:          record.Date.Format("2006-01-02"),
		Status:        string(record.Status),
		InTime:        record.InTime,
		OutTime:       record.OutTime,
		OvertimeHours: record.OvertimeHours,
		WorkedHours:   record.WorkedHours,
		PayMultiplier: record.PayMultiplier,
		AdvanceAmount: record.AdvanceAmount.Round(2).InexactFloat64(),
	}
}
