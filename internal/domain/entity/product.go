package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable SKU. Stock is the authoritative on-hand unit
// count and DamageStock the subset flagged damaged (DamageStock <= Stock,
// Stock >= 0). Both counters are mutated only through ledger operations.
type Product struct {
	ID          string
	ProductCode string // unique
	Name        string
	Description string
	CategoryID  string
	BrandID     string
	Price       decimal.Decimal // sale price per unit
	Stock       int64
	DamageStock int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
