package usecase

import (
	"fmt"
	"time"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// MovementQueryUseCase read side of the movement history. Writes go through
// the stock ledger use case.
type MovementQueryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementQueryUseCase builds the use case over a pool-bound repository.
func NewMovementQueryUseCase(repo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// GetByID returns one movement or nil when it does not exist.
func (uc *MovementQueryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if m == nil {
		return nil, nil
	}
	return toMovementResponse(m), nil
}

// List returns movements newest first, optionally filtered by type and date range.
func (uc *MovementQueryUseCase) List(movementType string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(movementType, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := &dto.MovementListResponse{
		Movements: make([]dto.MovementResponse, 0, len(list)),
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range list {
		out.Movements = append(out.Movements, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	out := &dto.MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		EmployeeID:    m.EmployeeID,
		Total:         m.Total,
		TotalQuantity: m.TotalQuantity,
		CreatedAt:     m.CreatedAt,
		Items:         make([]dto.MovementItemResponse, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		out.Items = append(out.Items, dto.MovementItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Reason:    it.Reason,
		})
	}
	return out
}
