package dto

import "time"

// CreateShopRequest body for POST /api/shops.
type CreateShopRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	OwnerName string `json:"owner_name,omitempty"`
}

// UpdateShopRequest body for PUT /api/shops/:id.
type UpdateShopRequest struct {
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	OwnerName *string `json:"owner_name,omitempty"`
}

// ShopResponse a shop row.
type ShopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	OwnerName string    `json:"owner_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ShopListResponse page of shops.
type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
	Page  PageResponse   `json:"page"`
}
