package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
)

// ===== FAKES =====

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) key(staffID string, date time.Time) int {
	for i := range f.records {
		if f.records[i].StaffID == staffID && f.records[i].Date.Equal(date) {
			return i
		}
	}
	return -1
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	if i := f.key(record.StaffID, record.Date); i >= 0 {
		record.ID = f.records[i].ID
		f.records[i] = record
		return record, nil
	}
	f.nextID++
	record.ID = string(rune('a' + f.nextID - 1))
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	if i := f.key(staffID, date); i >= 0 {
		copied := f.records[i]
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetOvertime(ctx context.Context, id string, overtimeHours float64) (attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].OvertimeHours = overtimeHours
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetAdvance(ctx context.Context, id string, amount decimal.Decimal) (attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].AdvanceAmount = amount
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.StaffID == staffID && !record.Date.Before(from) && record.Date.Before(to) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SumAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeAttendanceRepo) ListAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]attendance.AdvanceEntry, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	return nil
}

type fakeStaffRepo struct {
	members map[string]staff.Staff
}

func (f *fakeStaffRepo) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	return member, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string, userID string) (staff.Staff, error) {
	member, ok := f.members[id]
	if !ok || member.UserID != userID {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) ListByUser(ctx context.Context, userID string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, member staff.Staff) error { return nil }
func (f *fakeStaffRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}
func (f *fakeStaffRepo) DeleteAllByUser(ctx context.Context, userID string) error { return nil }

func newTestService(repo *fakeAttendanceRepo) *AttendanceServiceImpl {
	staffRepo := &fakeStaffRepo{members: map[string]staff.Staff{
		"staff-1": {ID: "staff-1", UserID: "user-1", Name: "Ravi"},
	}}
	svc := NewAttendanceService(repo, staffRepo).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// ===== MARK =====

func TestMark_CreatesRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	resp, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1",
		Date:    "2026-06-10",
		Status:  "present",
		InTime:  strPtr("09:00"),
		OutTime: strPtr("18:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2026-06-10", resp.Date)
	require.NotNil(t, resp.InTime)
	assert.Equal(t, "09:00", *resp.InTime)
	assert.Equal(t, 1.0, resp.PayMultiplier)
}

func TestMark_ReMarkIsLastWriteWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	first, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
	})
	require.NoError(t, err)

	second, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "half_day",
	})
	require.NoError(t, err)

	// One record per (staff, date); status reflects the latest mark.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "half_day", second.Status)
	assert.Len(t, repo.records, 1)
}

func TestMark_AbsentWipesTimesKeepsAdvance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
		InTime: strPtr("09:00"), OutTime: strPtr("18:00"),
	})
	require.NoError(t, err)

	_, err = svc.MarkAdvance(ctx, "user-1", attendance.MarkAdvanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Amount: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	resp, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "absent",
		InTime: strPtr("09:00"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.InTime)
	assert.Nil(t, resp.OutTime)
	// The advance survives the re-mark.
	assert.Equal(t, 500.0, resp.AdvanceAmount)
}

func TestMark_ReMarkPresentKeepsOvertime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
	})
	require.NoError(t, err)

	_, err = svc.MarkOvertime(ctx, "user-1", attendance.MarkOvertimeRequest{
		StaffID: "staff-1", Date: "2026-06-10", OvertimeHours: 2,
	})
	require.NoError(t, err)

	resp, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
		InTime: strPtr("08:00"), OutTime: strPtr("19:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, resp.OvertimeHours)

	// Re-marking to a non-present status drops the overtime.
	resp, err = svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "off",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.OvertimeHours)
}

func TestMark_UnknownStaffRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeAttendanceRepo{})

	_, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-ghost", Date: "2026-06-10", Status: "present",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	// Staff of another tenant looks identical to missing staff.
	_, err = svc.Mark(ctx, "user-2", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestMark_InvalidInputRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeAttendanceRepo{})

	tests := []struct {
		name string
		req  attendance.MarkAttendanceRequest
	}{
		{"bad status", attendance.MarkAttendanceRequest{StaffID: "staff-1", Date: "2026-06-10", Status: "late"}},
		{"bad date", attendance.MarkAttendanceRequest{StaffID: "staff-1", Date: "10-06-2026", Status: "present"}},
		{"bad time", attendance.MarkAttendanceRequest{StaffID: "staff-1", Date: "2026-06-10", Status: "present", InTime: strPtr("25:99")}},
		{"multiplier out of range", attendance.MarkAttendanceRequest{StaffID: "staff-1", Date: "2026-06-10", Status: "present", PayMultiplier: floatPtr(11)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mark(ctx, "user-1", tt.req)
			assert.Error(t, err)
		})
	}
}

// ===== OVERTIME =====

func TestMarkOvertime_RequiresPresentRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	// No record at all.
	_, err := svc.MarkOvertime(ctx, "user-1", attendance.MarkOvertimeRequest{
		StaffID: "staff-1", Date: "2026-06-10", OvertimeHours: 2,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	// Absent record.
	_, err = svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "absent",
	})
	require.NoError(t, err)

	_, err = svc.MarkOvertime(ctx, "user-1", attendance.MarkOvertimeRequest{
		StaffID: "staff-1", Date: "2026-06-10", OvertimeHours: 2,
	})
	assert.ErrorIs(t, err, attendance.ErrOvertimeRequiresPresent)
}

func TestMarkOvertime_SetsHoursOnPresentDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
	})
	require.NoError(t, err)

	resp, err := svc.MarkOvertime(ctx, "user-1", attendance.MarkOvertimeRequest{
		StaffID: "staff-1", Date: "2026-06-10", OvertimeHours: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, resp.OvertimeHours)
}

// ===== ADVANCE =====

func TestMarkAdvance_CreatesAbsentPlaceholder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	resp, err := svc.MarkAdvance(ctx, "user-1", attendance.MarkAdvanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Amount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	assert.Equal(t, "absent", resp.Status)
	assert.Equal(t, 300.0, resp.AdvanceAmount)
}

func TestMarkAdvance_UpdatesExistingRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.Mark(ctx, "user-1", attendance.MarkAttendanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Status: "present",
	})
	require.NoError(t, err)

	resp, err := svc.MarkAdvance(ctx, "user-1", attendance.MarkAdvanceRequest{
		StaffID: "staff-1", Date: "2026-06-10", Amount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	// The day keeps its marked status; only the advance changes.
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, 300.0, resp.AdvanceAmount)
	assert.Len(t, repo.records, 1)
}

// ===== MONTH VIEW =====

func TestGetMonth_SummaryAndDisplayStatuses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	marks := []attendance.MarkAttendanceRequest{
		{StaffID: "staff-1", Date: "2026-06-01", Status: "present"},
		{StaffID: "staff-1", Date: "2026-06-02", Status: "present"},
		{StaffID: "staff-1", Date: "2026-06-03", Status: "absent"},
		{StaffID: "staff-1", Date: "2026-06-04", Status: "half_day"},
		{StaffID: "staff-1", Date: "2026-06-05", Status: "off"},
	}
	for _, req := range marks {
		_, err := svc.Mark(ctx, "user-1", req)
		require.NoError(t, err)
	}

	_, err := svc.MarkOvertime(ctx, "user-1", attendance.MarkOvertimeRequest{
		StaffID: "staff-1", Date: "2026-06-02", OvertimeHours: 2,
	})
	require.NoError(t, err)

	_, err = svc.MarkAdvance(ctx, "user-1", attendance.MarkAdvanceRequest{
		StaffID: "staff-1", Date: "2026-06-03", Amount: decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	resp, err := svc.GetMonth(ctx, "user-1", "staff-1", 6, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 1, resp.Summary.Overtime)
	assert.Equal(t, 250.0, resp.Summary.AdvanceTotal)
	require.Len(t, resp.Attendances, 5)

	statuses := make([]string, len(resp.Attendances))
	for i, item := range resp.Attendances {
		statuses[i] = item.Status
	}
	assert.Equal(t, []string{"P", "OT", "A", "HD", "Off"}, statuses)
}

func TestGetMonth_DefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo)

	resp, err := svc.GetMonth(ctx, "user-1", "staff-1", 0, 0)
	require.NoError(t, err)

	// Fixed clock in newTestService: June 2026.
	assert.Equal(t, 6, resp.Month)
	assert.Equal(t, 2026, resp.Year)
	assert.Empty(t, resp.Attendances)
}

func TestGetMonth_InvalidMonthRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeAttendanceRepo{})

	_, err := svc.GetMonth(ctx, "user-1", "staff-1", 13, 2026)
	assert.Error(t, err)
}
