package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest one line of an order body. Price empty means "use the
// product's current price".
type OrderItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// CreateOrderRequest body for POST /api/orders.
type CreateOrderRequest struct {
	ShopID     string             `json:"shop_id"`
	Items      []OrderItemRequest `json:"items"`
	PaidAmount decimal.Decimal    `json:"paid_amount"`
}

// UpdateOrderStatusRequest body for PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// RecordPaymentRequest body for PATCH /api/orders/:id/payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RecordReturnsRequest body for PATCH /api/orders/:id/returns.
type RecordReturnsRequest struct {
	ReturnedQuantity int64 `json:"returned_quantity"`
	DamageQuantity   int64 `json:"damage_quantity"`
}

// OrderItemResponse one persisted order line.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// OrderResponse an order with its items.
type OrderResponse struct {
	ID               string              `json:"id"`
	ShopID           string              `json:"shop_id"`
	EmployeeID       string              `json:"employee_id"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"payment_status"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	PaidAmount       decimal.Decimal     `json:"paid_amount"`
	DueAmount        decimal.Decimal     `json:"due_amount"`
	ReturnedQuantity int64               `json:"returned_quantity"`
	DamageQuantity   int64               `json:"damage_quantity"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []OrderItemResponse `json:"items"`
}

// OrderListResponse page of orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Page   PageResponse    `json:"page"`
}
