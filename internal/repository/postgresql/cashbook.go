package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type cashbookRepository struct {
	db *database.DB
}

// Manual incomes and expenses live in twin tables with identical shapes;
// every query below is written once and pointed at either table.
func tableFor(kind cashbook.EntryKind) string {
	if kind == cashbook.KindIncome {
		return "cashbook_incomes"
	}
	return "cashbook_expenses"
}

func notFoundFor(kind cashbook.EntryKind) error {
	if kind == cashbook.KindIncome {
		return cashbook.ErrIncomeNotFound
	}
	return cashbook.ErrExpenseNotFound
}

func (c *cashbookRepository) create(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, date, amount, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, tableFor(entry.Kind))

	err := q.QueryRow(ctx, query,
		entry.UserID, entry.Date, entry.Amount, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return cashbook.Entry{}, fmt.Errorf("failed to create %s: %w", entry.Kind, err)
	}

	return entry, nil
}

func (c *cashbookRepository) get(ctx context.Context, kind cashbook.EntryKind, id, userID string) (*cashbook.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`
		SELECT id, user_id, date, amount, description, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
		LIMIT 1
	`, tableFor(kind))

	entry := cashbook.Entry{Kind: kind}
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&entry.ID, &entry.UserID, &entry.Date, &entry.Amount,
		&entry.Description, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, notFoundFor(kind)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}

	return &entry, nil
}

func (c *cashbookRepository) update(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET date = $1, amount = $2, description = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at
	`, tableFor(entry.Kind))

	err := q.QueryRow(ctx, query,
		entry.Date, entry.Amount, entry.Description, entry.ID, entry.UserID,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cashbook.Entry{}, notFoundFor(entry.Kind)
		}
		return cashbook.Entry{}, fmt.Errorf("failed to update %s: %w", entry.Kind, err)
	}

	return entry, nil
}

func (c *cashbookRepository) delete(ctx context.Context, kind cashbook.EntryKind, id, userID string) error {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, tableFor(kind))

	tag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundFor(kind)
	}

	return nil
}

func (c *cashbookRepository) listByPeriod(ctx context.Context, kind cashbook.EntryKind, userID string, from, to time.Time) ([]cashbook.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`
		SELECT id, user_id, date, amount, description, created_at, updated_at
		FROM %s
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC, id ASC
	`, tableFor(kind))

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	defer rows.Close()

	entries := []cashbook.Entry{}
	for rows.Next() {
		entry := cashbook.Entry{Kind: kind}
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Date, &entry.Amount,
			&entry.Description, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %ss: %w", kind, err)
	}

	return entries, nil
}

func (c *cashbookRepository) sumByPeriod(ctx context.Context, kind cashbook.EntryKind, userID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, c.db)

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)
		FROM %s
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`, tableFor(kind))

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %ss: %w", kind, err)
	}

	return total, nil
}

// CreateIncome implements cashbook.CashbookRepository.
func (c *cashbookRepository) CreateIncome(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	entry.Kind = cashbook.KindIncome
	return c.create(ctx, entry)
}

// CreateExpense implements cashbook.CashbookRepository.
func (c *cashbookRepository) CreateExpense(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	entry.Kind = cashbook.KindExpense
	return c.create(ctx, entry)
}

// GetIncome implements cashbook.CashbookRepository.
func (c *cashbookRepository) GetIncome(ctx context.Context, id, userID string) (*cashbook.Entry, error) {
	return c.get(ctx, cashbook.KindIncome, id, userID)
}

// GetExpense implements cashbook.CashbookRepository.
func (c *cashbookRepository) GetExpense(ctx context.Context, id, userID string) (*cashbook.Entry, error) {
	return c.get(ctx, cashbook.KindExpense, id, userID)
}

// UpdateIncome implements cashbook.CashbookRepository.
func (c *cashbookRepository) UpdateIncome(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	entry.Kind = cashbook.KindIncome
	return c.update(ctx, entry)
}

// UpdateExpense implements cashbook.CashbookRepository.
func (c *cashbookRepository) UpdateExpense(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	entry.Kind = cashbook.KindExpense
	return c.update(ctx, entry)
}

// DeleteIncome implements cashbook.CashbookRepository.
func (c *cashbookRepository) DeleteIncome(ctx context.Context, id, userID string) error {
	return c.delete(ctx, cashbook.KindIncome, id, userID)
}

// DeleteExpense implements cashbook.CashbookRepository.
func (c *cashbookRepository) DeleteExpense(ctx context.Context, id, userID string) error {
	return c.delete(ctx, cashbook.KindExpense, id, userID)
}

// ListIncomesByPeriod implements cashbook.CashbookRepository.
func (c *cashbookRepository) ListIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]cashbook.Entry, error) {
	return c.listByPeriod(ctx, cashbook.KindIncome, userID, from, to)
}

// ListExpensesByPeriod implements cashbook.CashbookRepository.
func (c *cashbookRepository) ListExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]cashbook.Entry, error) {
	return c.listByPeriod(ctx, cashbook.KindExpense, userID, from, to)
}

// SumIncomesByPeriod implements cashbook.CashbookRepository.
func (c *cashbookRepository) SumIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return c.sumByPeriod(ctx, cashbook.KindIncome, userID, from, to)
}

// SumExpensesByPeriod implements cashbook.CashbookRepository.
func (c *cashbookRepository) SumExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return c.sumByPeriod(ctx, cashbook.KindExpense, userID, from, to)
}

// DeleteAllByUser implements cashbook.CashbookRepository.
func (c *cashbookRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, c.db)

	if _, err := q.Exec(ctx, `DELETE FROM cashbook_incomes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete incomes for user: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM cashbook_expenses WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete expenses for user: %w", err)
	}

	return nil
}

func NewCashbookRepository(db *database.DB) cashbook.CashbookRepository {
	return &cashbookRepository{db: db}
}
