package cashbook

import (
	"context"
	"sort"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type CashbookServiceImpl struct {
	cashbookRepo   cashbook.CashbookRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewCashbookService(
	cashbookRepo cashbook.CashbookRepository,
	attendanceRepo attendance.AttendanceRepository,
) cashbook.CashbookService {
	return &CashbookServiceImpl{
		cashbookRepo:   cashbookRepo,
		attendanceRepo: attendanceRepo,
	}
}

func monthBounds(month, year int) (time.Time, time.Time, error) {
	if !validator.IsValidMonth(month) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}
	if !validator.IsValidYear(year) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{
			{Field: "year", Message: "must be between 2000 and 2100"},
		}
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

func (s *CashbookServiceImpl) GetOverview(ctx context.Context, userID string, month, year int) (cashbook.OverviewResponse, error) {
	from, to, err := monthBounds(month, year)
	if err != nil {
		return cashbook.OverviewResponse{}, err
	}

	incomeTotal, err := s.cashbookRepo.SumIncomesByPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.OverviewResponse{}, err
	}

	expenseManual, err := s.cashbookRepo.SumExpensesByPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.OverviewResponse{}, err
	}

	// Staff advances are money out the door the owner never typed into the
	// cashbook; they count as expenses in the overview.
	advanceTotal, err := s.attendanceRepo.SumAdvancesByUserAndPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.OverviewResponse{}, err
	}

	expenseTotal := expenseManual.Add(advanceTotal)
	balance := incomeTotal.Sub(expenseTotal)

	return cashbook.OverviewResponse{
		Month:        month,
		Year:         year,
		IncomeTotal:  incomeTotal.Round(2).InexactFloat64(),
		ExpenseTotal: expenseTotal.Round(2).InexactFloat64(),
		Balance:      balance.Round(2).InexactFloat64(),
	}, nil
}

func (s *CashbookServiceImpl) GetTransactions(ctx context.Context, userID string, month, year int) (cashbook.TransactionsResponse, error) {
	from, to, err := monthBounds(month, year)
	if err != nil {
		return cashbook.TransactionsResponse{}, err
	}

	incomes, err := s.cashbookRepo.ListIncomesByPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.TransactionsResponse{}, err
	}

	expenses, err := s.cashbookRepo.ListExpensesByPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.TransactionsResponse{}, err
	}

	advances, err := s.attendanceRepo.ListAdvancesByUserAndPeriod(ctx, userID, from, to)
	if err != nil {
		return cashbook.TransactionsResponse{}, err
	}

	transactions := make([]cashbook.Transaction, 0, len(incomes)+len(expenses)+len(advances))

	for _, entry := range incomes {
		transactions = append(transactions, cashbook.Transaction{
			ID:          "income_" + entry.ID,
			Type:        "income",
			Date:        entry.Date.Format("2006-01-02"),
			Description: descriptionOr(entry.Description, "Income"),
			Amount:      entry.Amount.Round(2).InexactFloat64(),
		})
	}

	for _, entry := range expenses {
		transactions = append(transactions, cashbook.Transaction{
			ID:          "expense_" + entry.ID,
			Type:        "expense",
			Date:        entry.Date.Format("2006-01-02"),
			Description: descriptionOr(entry.Description, "Expense"),
			Amount:      entry.Amount.Round(2).InexactFloat64(),
		})
	}

	for _, adv := range advances {
		name := adv.StaffName
		if name == "" {
			name = "Staff"
		}
		transactions = append(transactions, cashbook.Transaction{
			ID:          "advance_" + adv.AttendanceID,
			Type:        "expense",
			Date:        adv.Date.Format("2006-01-02"),
			Description: "Advance given to " + name,
			Amount:      adv.Amount.Round(2).InexactFloat64(),
		})
	}

	// Stable chronological merge; the prefixed id breaks date ties so the
	// order is deterministic across the three sources.
	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date < transactions[j].Date
		}
		return transactions[i].ID < transactions[j].ID
	})

	return cashbook.TransactionsResponse{
		Month:        month,
		Year:         year,
		Transactions: transactions,
	}, nil
}

func (s *CashbookServiceImpl) AddIncome(ctx context.Context, userID string, req cashbook.EntryRequest) (cashbook.EntryResponse, error) {
	return s.add(ctx, userID, req, s.cashbookRepo.CreateIncome)
}

func (s *CashbookServiceImpl) AddExpense(ctx context.Context, userID string, req cashbook.EntryRequest) (cashbook.EntryResponse, error) {
	return s.add(ctx, userID, req, s.cashbookRepo.CreateExpense)
}

func (s *CashbookServiceImpl) add(
	ctx context.Context,
	userID string,
	req cashbook.EntryRequest,
	create func(context.Context, cashbook.Entry) (cashbook.Entry, error),
) (cashbook.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return cashbook.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := create(ctx, cashbook.Entry{
		UserID:      userID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return cashbook.EntryResponse{}, err
	}

	return toEntryResponse(created), nil
}

func (s *CashbookServiceImpl) UpdateIncome(ctx context.Context, userID, id string, req cashbook.EntryRequest) (cashbook.EntryResponse, error) {
	return s.update(ctx, userID, id, req, s.cashbookRepo.GetIncome, s.cashbookRepo.UpdateIncome)
}

func (s *CashbookServiceImpl) UpdateExpense(ctx context.Context, userID, id string, req cashbook.EntryRequest) (cashbook.EntryResponse, error) {
	return s.update(ctx, userID, id, req, s.cashbookRepo.GetExpense, s.cashbookRepo.UpdateExpense)
}

func (s *CashbookServiceImpl) update(
	ctx context.Context,
	userID, id string,
	req cashbook.EntryRequest,
	get func(context.Context, string, string) (*cashbook.Entry, error),
	save func(context.Context, cashbook.Entry) (cashbook.Entry, error),
) (cashbook.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return cashbook.EntryResponse{}, err
	}

	entry, err := get(ctx, id, userID)
	if err != nil {
		return cashbook.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	entry.Date = date
	entry.Amount = req.Amount
	entry.Description = req.Description

	updated, err := save(ctx, *entry)
	if err != nil {
		return cashbook.EntryResponse{}, err
	}

	return toEntryResponse(updated), nil
}

func (s *CashbookServiceImpl) DeleteIncome(ctx context.Context, userID, id string) error {
	return s.cashbookRepo.DeleteIncome(ctx, id, userID)
}

func (s *CashbookServiceImpl) DeleteExpense(ctx context.Context, userID, id string) error {
	return s.cashbookRepo.DeleteExpense(ctx, id, userID)
}

func descriptionOr(description *string, fallback string) string {
	if description != nil && *description != "" {
		return *description
	}
	return fallback
}

func toEntryResponse(entry cashbook.Entry) cashbook.EntryResponse {
	return cashbook.EntryResponse{
		ID:          entry.ID,
		Date:        entry.Date.Format("2006-01-02"),
		Amount:      entry.Amount.Round(2).InexactFloat64(),
		Description: entry.Description,
	}
}
