package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products. Stock starts at 0 and is
// only ever changed through ledger movements.
type CreateProductRequest struct {
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	BrandID     string          `json:"brand_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest body for PUT /api/products/:id. Stock/DamageStock are
// deliberately absent.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	BrandID     *string          `json:"brand_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse a product row.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	BrandID     string          `json:"brand_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	DamageStock int64           `json:"damage_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse page of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
