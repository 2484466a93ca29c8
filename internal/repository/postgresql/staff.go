package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

// Create implements staff.StaffRepository.
func (s *staffRepository) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO staff (user_id, name, phone_number, salary_type, salary_amount, overtime_charges)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		member.UserID,
		member.Name,
		member.PhoneNumber,
		member.SalaryType,
		member.SalaryAmount,
		member.OvertimeCharges,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)

	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return member, nil
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string, userID string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, user_id, name, phone_number, salary_type, salary_amount, overtime_charges, created_at, updated_at
		FROM staff
		WHERE id = $1 AND user_id = $2
		LIMIT 1
	`

	var member staff.Staff
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&member.ID, &member.UserID, &member.Name, &member.PhoneNumber,
		&member.SalaryType, &member.SalaryAmount, &member.OvertimeCharges,
		&member.CreatedAt, &member.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return member, nil
}

// ListByUser implements staff.StaffRepository.
func (s *staffRepository) ListByUser(ctx context.Context, userID string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, user_id, name, phone_number, salary_type, salary_amount, overtime_charges, created_at, updated_at
		FROM staff
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	members := []staff.Staff{}
	for rows.Next() {
		var member staff.Staff
		if err := rows.Scan(
			&member.ID, &member.UserID, &member.Name, &member.PhoneNumber,
			&member.SalaryType, &member.SalaryAmount, &member.OvertimeCharges,
			&member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}

	return members, nil
}

// Update implements staff.StaffRepository.
func (s *staffRepository) Update(ctx context.Context, member staff.Staff) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE staff
		SET name = $1, phone_number = $2, salary_type = $3, salary_amount = $4,
			overtime_charges = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	tag, err := q.Exec(ctx, query,
		member.Name,
		member.PhoneNumber,
		member.SalaryType,
		member.SalaryAmount,
		member.OvertimeCharges,
		member.ID,
		member.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Delete implements staff.StaffRepository.
func (s *staffRepository) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// DeleteAllByUser implements staff.StaffRepository.
func (s *staffRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, s.db)

	if _, err := q.Exec(ctx, `DELETE FROM staff WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete staff for user: %w", err)
	}

	return nil
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}
