package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

// Create implements auth.UserRepository.
func (u *userRepository) Create(ctx context.Context, newUser auth.User) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (name, email, mobile, business_name, staff_size, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.Mobile,
		newUser.BusinessName,
		newUser.StaffSize,
		newUser.PasswordHash,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return auth.User{}, auth.ErrEmailExists
		}
		if strings.Contains(err.Error(), "users_mobile_key") {
			return auth.User{}, auth.ErrMobileExists
		}
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements auth.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (auth.User, error) {
	return u.getBy(ctx, "id", id)
}

// GetByMobile implements auth.UserRepository.
func (u *userRepository) GetByMobile(ctx context.Context, mobile string) (auth.User, error) {
	return u.getBy(ctx, "mobile", mobile)
}

// GetByEmail implements auth.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return u.getBy(ctx, "email", email)
}

func (u *userRepository) getBy(ctx context.Context, column, value string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := fmt.Sprintf(`
		SELECT id, name, email, mobile, business_name, staff_size, password_hash, created_at, updated_at
		FROM users
		WHERE %s = $1
		LIMIT 1
	`, column)

	var usr auth.User
	err := q.QueryRow(ctx, query, value).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.Mobile, &usr.BusinessName,
		&usr.StaffSize, &usr.PasswordHash, &usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return usr, nil
}

// Delete implements auth.UserRepository.
func (u *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepository{db: db}
}
