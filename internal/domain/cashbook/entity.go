package cashbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two manual ledger tables.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

// Entry is one manual cashbook row (income or expense). Advances are not
// entries; the ledger view merges them in from attendance at read time.
type Entry struct {
	ID          string
	UserID      string
	Kind        EntryKind
	Date        time.Time
	Amount      decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
