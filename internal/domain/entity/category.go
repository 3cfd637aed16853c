package entity

import "time"

// Category groups products for catalog filters.
type Category struct {
	ID        string
	Name      string // unique
	CreatedAt time.Time
	UpdatedAt time.Time
}
