package dto

import "time"

// CreateEmployeeRequest body for POST /api/employees (admin only).
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"` // "admin" | "sr"
	Password string `json:"password"`
}

// UpdateEmployeeRequest body for PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// EmployeeResponse an employee row. The password hash never leaves the server.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeListResponse page of employees.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Page      PageResponse       `json:"page"`
}
