package cashbook

import "context"

type CashbookService interface {
	GetOverview(ctx context.Context, userID string, month, year int) (OverviewResponse, error)

	// GetTransactions merges manual incomes, manual expenses and staff
	// advances into one ledger ordered by (date, id).
	GetTransactions(ctx context.Context, userID string, month, year int) (TransactionsResponse, error)

	AddIncome(ctx context.Context, userID string, req EntryRequest) (EntryResponse, error)
	AddExpense(ctx context.Context, userID string, req EntryRequest) (EntryResponse, error)

	UpdateIncome(ctx context.Context, userID, id string, req EntryRequest) (EntryResponse, error)
	UpdateExpense(ctx context.Context, userID, id string, req EntryRequest) (EntryResponse, error)

	DeleteIncome(ctx context.Context, userID, id string) error
	DeleteExpense(ctx context.Context, userID, id string) error
}
