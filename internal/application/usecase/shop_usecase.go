package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// ShopUseCase CRUD for shops.
type ShopUseCase struct {
	repo repository.ShopRepository
}

// NewShopUseCase builds the use case.
func NewShopUseCase(repo repository.ShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

// Create creates a shop.
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	shop := &entity.Shop{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		OwnerName: in.OwnerName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetByID fetches a shop.
func (uc *ShopUseCase) GetByID(id string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return toShopResponse(shop), nil
}

// Update edits a shop.
func (uc *ShopUseCase) Update(id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		shop.Name = *in.Name
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.Phone != nil {
		shop.Phone = *in.Phone
	}
	if in.OwnerName != nil {
		shop.OwnerName = *in.OwnerName
	}
	shop.UpdatedAt = time.Now()
	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Delete removes a shop.
func (uc *ShopUseCase) Delete(id string) error {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lists shops with pagination.
func (uc *ShopUseCase) List(limit, offset int) (*dto.ShopListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toShopResponse(s))
	}
	return &dto.ShopListResponse{
		Shops: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(out)},
	}, nil
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		OwnerName: s.OwnerName,
		CreatedAt: s.CreatedAt,
	}
}
