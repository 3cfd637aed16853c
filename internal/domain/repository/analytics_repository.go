package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSummary aggregate totals over the product table.
type StockSummary struct {
	ProductCount int64
	UnitsOnHand  int64
	DamagedUnits int64
	StockValue   decimal.Decimal // sum(stock * price)
}

// MovementSummary aggregate totals over movements in a period.
type MovementSummary struct {
	OutgoingQuantity int64
	IncomingQuantity int64
	OutgoingTotal    decimal.Decimal
	IncomingTotal    decimal.Decimal
}

// TopProduct one row of the outgoing-by-quantity ranking.
type TopProduct struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// OrderStatusCount order count per status.
type OrderStatusCount struct {
	Status string
	Count  int64
}

// AnalyticsRepository is the read port for dashboard aggregates.
type AnalyticsRepository interface {
	StockSummary() (*StockSummary, error)
	MovementSummary(from, to time.Time) (*MovementSummary, error)
	TopOutgoingProducts(from, to time.Time, limit int) ([]TopProduct, error)
	OrdersByStatus() ([]OrderStatusCount, error)
}
