package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types.
const (
	MovementTypeOutgoing      = "OUTGOING"       // stock leaving
	MovementTypeIncoming      = "INCOMING"       // stock arriving
	MovementTypeIncomingAdmin = "INCOMING_ADMIN" // bulk administrative incoming (no owning employee)
)

// Item reason tags for incoming movements.
const (
	ReasonDamaged  = "damaged"
	ReasonReturned = "returned"
)

// Movement is a recorded inventory change: one header plus its items, created
// atomically. Items are exclusively owned by the movement and deleted with it.
type Movement struct {
	ID            string
	Type          string
	EmployeeID    string // empty for INCOMING_ADMIN
	Total         decimal.Decimal
	TotalQuantity int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []MovementItem
}

// MovementItem one product line of a movement. Quantity is always positive;
// the sign of the stock effect comes from the movement type.
type MovementItem struct {
	ID         string
	MovementID string
	ProductID  string
	Quantity   int64
	Reason     string // "damaged" | "returned" | "" (incoming only)
}

// Outgoing reports whether the movement decrements stock.
func (m *Movement) Outgoing() bool {
	return m.Type == MovementTypeOutgoing
}
