package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
)

// ExpenseRepository is the persistence port for cashbook entries.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
	List(kind string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error)
	SumByKind(kind string, from, to *time.Time) (decimal.Decimal, error)
}
