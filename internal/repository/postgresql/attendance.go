package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `id, staff_id, date, status, in_time, out_time,
	   worked_hours, overtime_hours, pay_multiplier, advance_amount,
	   created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.StaffID, &att.Date, &att.Status, &att.InTime, &att.OutTime,
		&att.WorkedHours, &att.OvertimeHours, &att.PayMultiplier, &att.AdvanceAmount,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Upsert implements attendance.AttendanceRepository. The unique constraint
// on (staff_id, date) makes concurrent marks for the same day converge on
// a single row; last write wins.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			staff_id, date, status, in_time, out_time,
			worked_hours, overtime_hours, pay_multiplier, advance_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			worked_hours = EXCLUDED.worked_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			pay_multiplier = EXCLUDED.pay_multiplier,
			advance_amount = EXCLUDED.advance_amount,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.Status,
		record.InTime,
		record.OutTime,
		record.WorkedHours,
		record.OvertimeHours,
		record.PayMultiplier,
		record.AdvanceAmount,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE staff_id = $1 AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &att, nil
}

// SetOvertime implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetOvertime(ctx context.Context, id string, overtimeHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET overtime_hours = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, overtimeHours, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set overtime: %w", err)
	}

	return att, nil
}

// SetAdvance implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetAdvance(ctx context.Context, id string, amount decimal.Decimal) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET advance_amount = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, amount, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set advance: %w", err)
	}

	return att, nil
}

// ListByStaffAndPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE staff_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// SumAdvancesByUserAndPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) SumAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COALESCE(SUM(a.advance_amount), 0)
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		WHERE s.user_id = $1
		  AND a.date >= $2 AND a.date < $3
		  AND a.advance_amount > 0
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}

	return total, nil
}

// ListAdvancesByUserAndPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]attendance.AdvanceEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.date, s.name, a.advance_amount
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		WHERE s.user_id = $1
		  AND a.date >= $2 AND a.date < $3
		  AND a.advance_amount > 0
		ORDER BY a.date ASC, a.id ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	entries := []attendance.AdvanceEntry{}
	for rows.Next() {
		var entry attendance.AdvanceEntry
		if err := rows.Scan(&entry.AttendanceID, &entry.Date, &entry.StaffName, &entry.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advances: %w", err)
	}

	return entries, nil
}

// DeleteAllByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		DELETE FROM attendances
		WHERE staff_id IN (SELECT id FROM staff WHERE user_id = $1)
	`

	if _, err := q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete attendances for user: %w", err)
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
