package entity

import "time"

// Employee roles.
const (
	RoleAdmin = "admin"
	RoleSR    = "sr" // sales representative: creates orders and movements in the field
)

// Employee is a back-office user. Password holds the bcrypt hash.
type Employee struct {
	ID        string
	Name      string
	Email     string // unique
	Phone     string
	Role      string
	Password  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
