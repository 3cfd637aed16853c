package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body for POST /api/expenses.
type CreateExpenseRequest struct {
	Kind   string          `json:"kind"` // "EXPENSE" | "INCOME"
	Title  string          `json:"title"`
	Note   string          `json:"note,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// UpdateExpenseRequest body for PUT /api/expenses/:id.
type UpdateExpenseRequest struct {
	Title  *string          `json:"title,omitempty"`
	Note   *string          `json:"note,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *time.Time       `json:"date,omitempty"`
}

// ExpenseResponse a cashbook entry.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	Note      string          `json:"note,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseListResponse page of cashbook entries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Page     PageResponse      `json:"page"`
}
