package cashbook

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// EntryRequest is shared by add and update for both incomes and expenses.
type EntryRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

func (r *EntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse is a manual entry as returned by add/update.
type EntryResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

// OverviewResponse sums one calendar month. ExpenseTotal includes staff
// advances on top of manual expenses.
type OverviewResponse struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	IncomeTotal  float64 `json:"income_total"`
	ExpenseTotal float64 `json:"expense_total"`
	Balance      float64 `json:"balance"`
}

// Transaction is one merged ledger line. ID carries a kind prefix
// (income_/expense_/advance_) so advance lines cannot collide with manual
// entries and clients can tell them apart.
type Transaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type TransactionsResponse struct {
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Transactions []Transaction `json:"transactions"`
}
