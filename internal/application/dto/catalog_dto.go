package dto

import "time"

// NameRequest body for category/brand create and update.
type NameRequest struct {
	Name string `json:"name"`
}

// NameResponse a category or brand row.
type NameResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NameListResponse page of categories or brands.
type NameListResponse struct {
	Items []NameResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
