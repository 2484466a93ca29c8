package cashbook

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CashbookRepository persists manual incomes and expenses. Every method
// takes the tenant's userID; rows belonging to other tenants behave as if
// they do not exist.
type CashbookRepository interface {
	CreateIncome(ctx context.Context, entry Entry) (Entry, error)
	CreateExpense(ctx context.Context, entry Entry) (Entry, error)

	GetIncome(ctx context.Context, id, userID string) (*Entry, error)
	GetExpense(ctx context.Context, id, userID string) (*Entry, error)

	UpdateIncome(ctx context.Context, entry Entry) (Entry, error)
	UpdateExpense(ctx context.Context, entry Entry) (Entry, error)

	DeleteIncome(ctx context.Context, id, userID string) error
	DeleteExpense(ctx context.Context, id, userID string) error

	// ListIncomesByPeriod / ListExpensesByPeriod return entries with
	// from <= date < to, ordered by date then id ascending.
	ListIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]Entry, error)
	ListExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]Entry, error)

	SumIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
	SumExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)

	// DeleteAllByUser removes every manual entry of the tenant; used inside
	// the account-deletion transaction.
	DeleteAllByUser(ctx context.Context, userID string) error
}
