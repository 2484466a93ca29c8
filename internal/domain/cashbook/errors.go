package cashbook

import "errors"

// Cashbook domain errors. Not-found doubles as the cross-tenant answer so
// responses never reveal whether another tenant's entry exists.
var (
	ErrIncomeNotFound  = errors.New("income not found or you do not have permission to access it")
	ErrExpenseNotFound = errors.New("expense not found or you do not have permission to access it")
)
