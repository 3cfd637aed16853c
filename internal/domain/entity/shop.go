package entity

import "time"

// Shop is a retail outlet served by the back office.
type Shop struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	OwnerName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
