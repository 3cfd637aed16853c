package repository

import (
	"time"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
)

// MovementRepository is the persistence port for movements and their items.
// A movement header and its items are written together; items are owned by the
// header and removed with it.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	UpdateHeader(movement *entity.Movement) error
	ReplaceItems(movementID string, items []entity.MovementItem) error
	Delete(id string) error
	List(movementType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
