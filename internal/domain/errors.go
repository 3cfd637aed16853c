package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the first under-stocked product of a batch so the
// operator message can say which product blocked the movement.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int64
	Required    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, required %d",
		e.ProductName, e.Available, e.Required)
}

// Unwrap lets errors.Is(err, ErrInsufficientStock) match the sentinel.
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
