package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Placed is the initial state; Cancelled and Delivered are terminal.
const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusDue       = "DUE"
	OrderStatusReceived  = "RECEIVED"
)

// Payment statuses.
const (
	PaymentStatusUnpaid = "UNPAID"
	PaymentStatusPaid   = "PAID"
	PaymentStatusDue    = "DUE"
)

// Order records demand taken by an SR for a shop. Creating an order does not
// touch product stock; stock changes only when goods physically move (an
// outgoing movement at fulfillment time).
type Order struct {
	ID               string
	ShopID           string
	EmployeeID       string
	Status           string
	PaymentStatus    string
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	DueAmount        decimal.Decimal
	ReturnedQuantity int64
	DamageQuantity   int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItem
}

// OrderItem one product line of an order, priced at order time.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
	Total     decimal.Decimal
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusDue, OrderStatusReceived:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from into to.
// Placed fans out; Cancelled and Delivered accept no further transitions.
func CanTransition(from, to string) bool {
	if !ValidOrderStatus(from) || !ValidOrderStatus(to) || from == to {
		return false
	}
	switch from {
	case OrderStatusCancelled, OrderStatusDelivered:
		return false
	case OrderStatusPlaced:
		return true
	case OrderStatusShipped:
		return to == OrderStatusDelivered || to == OrderStatusCancelled ||
			to == OrderStatusDue || to == OrderStatusReceived
	case OrderStatusDue, OrderStatusReceived:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	}
	return false
}
