package repository

import (
	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
)

// OrderRepository is the persistence port for orders and their items.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(shopID, status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	UpdatePayment(id string, paid, due decimal.Decimal, paymentStatus string) error
	UpdateReturns(id string, returnedQty, damageQty int64) error
	Delete(id string) error
}
