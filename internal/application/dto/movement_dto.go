package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest one line of a movement body.
type MovementItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"` // "damaged" | "returned" | "" (incoming only)
}

// CreateMovementRequest body for POST /api/movements/outgoing and /incoming.
type CreateMovementRequest struct {
	Items []MovementItemRequest `json:"items"`
}

// UpdateMovementRequest body for PUT /api/movements/{outgoing|incoming}/:id.
type UpdateMovementRequest struct {
	Items []MovementItemRequest `json:"items"`
}

// MovementItemResponse one persisted movement line.
type MovementItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// MovementResponse a movement header with its items.
type MovementResponse struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	EmployeeID    string                 `json:"employee_id,omitempty"`
	Total         decimal.Decimal        `json:"total"`
	TotalQuantity int64                  `json:"total_quantity"`
	CreatedAt     time.Time              `json:"created_at"`
	Items         []MovementItemResponse `json:"items"`
}

// MovementListResponse page of movements.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}
