package repository

import "github.com/shopdesk/backoffice-api/internal/domain/entity"

// ProductRepository is the persistence port for Product.
// Stock/DamageStock writes happen only inside ledger transactions:
// GetForUpdate locks the row (SELECT FOR UPDATE) and UpdateStock persists the
// counters computed under that lock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(productCode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)

	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(id string, stock, damageStock int64) error
}
