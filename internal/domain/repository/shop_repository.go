package repository

import "github.com/shopdesk/backoffice-api/internal/domain/entity"

// ShopRepository is the persistence port for Shop.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Shop, error)
}
