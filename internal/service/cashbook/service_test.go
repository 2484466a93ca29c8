package cashbook

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
)

// ===== FAKES =====

type fakeCashbookRepo struct {
	entries []cashbook.Entry
	nextID  int
}

func (f *fakeCashbookRepo) create(entry cashbook.Entry, kind cashbook.EntryKind) (cashbook.Entry, error) {
	f.nextID++
	entry.ID = strconv.Itoa(f.nextID)
	entry.Kind = kind
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeCashbookRepo) get(id, userID string, kind cashbook.EntryKind) (*cashbook.Entry, error) {
	for i := range f.entries {
		e := f.entries[i]
		if e.ID == id && e.Kind == kind {
			if e.UserID != userID {
				break
			}
			copied := e
			return &copied, nil
		}
	}
	if kind == cashbook.KindIncome {
		return nil, cashbook.ErrIncomeNotFound
	}
	return nil, cashbook.ErrExpenseNotFound
}

func (f *fakeCashbookRepo) CreateIncome(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	return f.create(entry, cashbook.KindIncome)
}
func (f *fakeCashbookRepo) CreateExpense(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	return f.create(entry, cashbook.KindExpense)
}
func (f *fakeCashbookRepo) GetIncome(ctx context.Context, id, userID string) (*cashbook.Entry, error) {
	return f.get(id, userID, cashbook.KindIncome)
}
func (f *fakeCashbookRepo) GetExpense(ctx context.Context, id, userID string) (*cashbook.Entry, error) {
	return f.get(id, userID, cashbook.KindExpense)
}
func (f *fakeCashbookRepo) UpdateIncome(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	return f.update(entry)
}
func (f *fakeCashbookRepo) UpdateExpense(ctx context.Context, entry cashbook.Entry) (cashbook.Entry, error) {
	return f.update(entry)
}

func (f *fakeCashbookRepo) update(entry cashbook.Entry) (cashbook.Entry, error) {
	for i := range f.entries {
		if f.entries[i].ID == entry.ID && f.entries[i].Kind == entry.Kind {
			f.entries[i] = entry
			return entry, nil
		}
	}
	return cashbook.Entry{}, cashbook.ErrIncomeNotFound
}

func (f *fakeCashbookRepo) DeleteIncome(ctx context.Context, id, userID string) error {
	return f.delete(id, userID, cashbook.KindIncome, cashbook.ErrIncomeNotFound)
}
func (f *fakeCashbookRepo) DeleteExpense(ctx context.Context, id, userID string) error {
	return f.delete(id, userID, cashbook.KindExpense, cashbook.ErrExpenseNotFound)
}

func (f *fakeCashbookRepo) delete(id, userID string, kind cashbook.EntryKind, notFound error) error {
	for i := range f.entries {
		if f.entries[i].ID == id && f.entries[i].Kind == kind && f.entries[i].UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return notFound
}

func (f *fakeCashbookRepo) listByPeriod(userID string, from, to time.Time, kind cashbook.EntryKind) []cashbook.Entry {
	var out []cashbook.Entry
	for _, e := range f.entries {
		if e.UserID == userID && e.Kind == kind && !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeCashbookRepo) ListIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]cashbook.Entry, error) {
	return f.listByPeriod(userID, from, to, cashbook.KindIncome), nil
}
func (f *fakeCashbookRepo) ListExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) ([]cashbook.Entry, error) {
	return f.listByPeriod(userID, from, to, cashbook.KindExpense), nil
}

func (f *fakeCashbookRepo) SumIncomesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return f.sum(userID, from, to, cashbook.KindIncome), nil
}
func (f *fakeCashbookRepo) SumExpensesByPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return f.sum(userID, from, to, cashbook.KindExpense), nil
}

func (f *fakeCashbookRepo) sum(userID string, from, to time.Time, kind cashbook.EntryKind) decimal.Decimal {
	total := decimal.Zero
	for _, e := range f.listByPeriod(userID, from, to, kind) {
		total = total.Add(e.Amount)
	}
	return total
}

func (f *fakeCashbookRepo) DeleteAllByUser(ctx context.Context, userID string) error { return nil }

// fakeAdvanceSource stubs the attendance side of the ledger.
type fakeAdvanceSource struct {
	advances []attendance.AdvanceEntry
}

func (f *fakeAdvanceSource) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	return record, nil
}
func (f *fakeAdvanceSource) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAdvanceSource) SetOvertime(ctx context.Context, id string, overtimeHours float64) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}
func (f *fakeAdvanceSource) SetAdvance(ctx context.Context, id string, amount decimal.Decimal) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}
func (f *fakeAdvanceSource) ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAdvanceSource) SumAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, adv := range f.advances {
		if !adv.Date.Before(from) && adv.Date.Before(to) {
			total = total.Add(adv.Amount)
		}
	}
	return total, nil
}

func (f *fakeAdvanceSource) ListAdvancesByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]attendance.AdvanceEntry, error) {
	var out []attendance.AdvanceEntry
	for _, adv := range f.advances {
		if !adv.Date.Before(from) && adv.Date.Before(to) {
			out = append(out, adv)
		}
	}
	return out, nil
}

func (f *fakeAdvanceSource) DeleteAllByUser(ctx context.Context, userID string) error { return nil }

func date(day int) time.Time {
	return time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

// ===== OVERVIEW =====

func TestGetOverview_AdvancesCountAsExpenses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	advances := &fakeAdvanceSource{advances: []attendance.AdvanceEntry{
		{AttendanceID: "a1", Date: date(10), StaffName: "Ravi", Amount: decimal.NewFromInt(500)},
	}}
	svc := NewCashbookService(repo, advances)

	_, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-05", Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	_, err = svc.AddExpense(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-08", Amount: decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx, "user-1", 6, 2026)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, overview.IncomeTotal)
	// 1200 manual + 500 advance.
	assert.Equal(t, 1700.0, overview.ExpenseTotal)
	assert.Equal(t, 3300.0, overview.Balance)
}

func TestGetOverview_EmptyMonthIsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCashbookService(&fakeCashbookRepo{}, &fakeAdvanceSource{})

	overview, err := svc.GetOverview(ctx, "user-1", 2, 2026)
	require.NoError(t, err)

	assert.Equal(t, 0.0, overview.IncomeTotal)
	assert.Equal(t, 0.0, overview.ExpenseTotal)
	assert.Equal(t, 0.0, overview.Balance)
}

func TestGetOverview_InvalidMonthRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCashbookService(&fakeCashbookRepo{}, &fakeAdvanceSource{})

	_, err := svc.GetOverview(ctx, "user-1", 0, 2026)
	assert.Error(t, err)

	_, err = svc.GetOverview(ctx, "user-1", 6, 1990)
	assert.Error(t, err)
}

// ===== TRANSACTIONS =====

func TestGetTransactions_MergedLedgerSortedByDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	advances := &fakeAdvanceSource{advances: []attendance.AdvanceEntry{
		{AttendanceID: "a1", Date: date(8), StaffName: "Ravi", Amount: decimal.NewFromInt(500)},
	}}
	svc := NewCashbookService(repo, advances)

	_, err := svc.AddExpense(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-12", Amount: decimal.NewFromInt(1200), Description: strPtr("Rent"),
	})
	require.NoError(t, err)

	_, err = svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(5000), Description: strPtr("Sales"),
	})
	require.NoError(t, err)

	resp, err := svc.GetTransactions(ctx, "user-1", 6, 2026)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 3)

	// Chronological regardless of source table.
	assert.Equal(t, "2026-06-03", resp.Transactions[0].Date)
	assert.Equal(t, "income", resp.Transactions[0].Type)
	assert.Equal(t, "Sales", resp.Transactions[0].Description)

	assert.Equal(t, "2026-06-08", resp.Transactions[1].Date)
	assert.Equal(t, "expense", resp.Transactions[1].Type)
	assert.Equal(t, "advance_a1", resp.Transactions[1].ID)
	assert.Equal(t, "Advance given to Ravi", resp.Transactions[1].Description)

	assert.Equal(t, "2026-06-12", resp.Transactions[2].Date)
	assert.Equal(t, "Rent", resp.Transactions[2].Description)
}

func TestGetTransactions_IDsCarrySourcePrefix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	svc := NewCashbookService(repo, &fakeAdvanceSource{})

	income, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	expense, err := svc.AddExpense(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	resp, err := svc.GetTransactions(ctx, "user-1", 6, 2026)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 2)

	ids := []string{resp.Transactions[0].ID, resp.Transactions[1].ID}
	assert.Contains(t, ids, "income_"+income.ID)
	assert.Contains(t, ids, "expense_"+expense.ID)
}

func TestGetTransactions_DefaultDescriptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	advances := &fakeAdvanceSource{advances: []attendance.AdvanceEntry{
		{AttendanceID: "a1", Date: date(5), Amount: decimal.NewFromInt(200)},
	}}
	svc := NewCashbookService(repo, advances)

	_, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.AddExpense(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-04", Amount: decimal.NewFromInt(100), Description: strPtr(""),
	})
	require.NoError(t, err)

	resp, err := svc.GetTransactions(ctx, "user-1", 6, 2026)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 3)

	assert.Equal(t, "Income", resp.Transactions[0].Description)
	assert.Equal(t, "Expense", resp.Transactions[1].Description)
	// Advance with no staff name joined falls back to the generic label.
	assert.Equal(t, "Advance given to Staff", resp.Transactions[2].Description)
}

// ===== CRUD =====

func TestUpdateIncome_ReplacesFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	svc := NewCashbookService(repo, &fakeAdvanceSource{})

	created, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100), Description: strPtr("Old"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateIncome(ctx, "user-1", created.ID, cashbook.EntryRequest{
		Date: "2026-06-07", Amount: decimal.NewFromInt(250), Description: strPtr("New"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2026-06-07", updated.Date)
	assert.Equal(t, 250.0, updated.Amount)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "New", *updated.Description)
}

func TestUpdateIncome_OtherTenantLooksNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	svc := NewCashbookService(repo, &fakeAdvanceSource{})

	created, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.UpdateIncome(ctx, "user-2", created.ID, cashbook.EntryRequest{
		Date: "2026-06-07", Amount: decimal.NewFromInt(250),
	})
	assert.ErrorIs(t, err, cashbook.ErrIncomeNotFound)
}

func TestDeleteExpense_RemovesEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeCashbookRepo{}
	svc := NewCashbookService(repo, &fakeAdvanceSource{})

	created, err := svc.AddExpense(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(ctx, "user-1", created.ID))

	err = svc.DeleteExpense(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, cashbook.ErrExpenseNotFound)
}

func TestAddIncome_InvalidInputRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCashbookService(&fakeCashbookRepo{}, &fakeAdvanceSource{})

	_, err := svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "bad-date", Amount: decimal.NewFromInt(100),
	})
	assert.Error(t, err)

	_, err = svc.AddIncome(ctx, "user-1", cashbook.EntryRequest{
		Date: "2026-06-03", Amount: decimal.NewFromInt(-5),
	})
	assert.Error(t, err)
}
