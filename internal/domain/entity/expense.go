package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashbook entry kinds.
const (
	EntryKindExpense = "EXPENSE"
	EntryKindIncome  = "INCOME"
)

// Expense is a cashbook entry (expense or income) outside of order payments.
type Expense struct {
	ID        string
	Kind      string
	Title     string
	Note      string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
