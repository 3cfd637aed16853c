package entity

import "time"

// Brand is a product manufacturer/label.
type Brand struct {
	ID        string
	Name      string // unique
	CreatedAt time.Time
	UpdatedAt time.Time
}
