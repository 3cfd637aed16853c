package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// CategoryUseCase CRUD for categories.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create creates a category.
func (uc *CategoryUseCase) Create(in dto.NameRequest) (*dto.NameResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}

// Update renames a category.
func (uc *CategoryUseCase) Update(id string, in dto.NameRequest) (*dto.NameResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}

// Delete removes a category.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lists categories with pagination.
func (uc *CategoryUseCase) List(limit, offset int) (*dto.NameListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NameResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return &dto.NameListResponse{Items: out, Page: dto.PageResponse{Limit: limit, Offset: offset, Total: len(out)}}, nil
}

// BrandUseCase CRUD for brands.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase builds the use case.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create creates a brand.
func (uc *BrandUseCase) Create(in dto.NameRequest) (*dto.NameResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	brand := &entity.Brand{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: brand.ID, Name: brand.Name, CreatedAt: brand.CreatedAt}, nil
}

// Update renames a brand.
func (uc *BrandUseCase) Update(id string, in dto.NameRequest) (*dto.NameResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	brand.Name = in.Name
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: brand.ID, Name: brand.Name, CreatedAt: brand.CreatedAt}, nil
}

// Delete removes a brand.
func (uc *BrandUseCase) Delete(id string) error {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lists brands with pagination.
func (uc *BrandUseCase) List(limit, offset int) (*dto.NameListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.NameResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
	}
	return &dto.NameListResponse{Items: out, Page: dto.PageResponse{Limit: limit, Offset: offset, Total: len(out)}}, nil
}
