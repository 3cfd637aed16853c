package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// StockLedgerUseCase is the single choke point for Product.Stock/DamageStock
// mutation. Every operation runs as one transaction: product rows are locked
// with SELECT FOR UPDATE, the sufficiency check and the write happen under the
// same locks, and any error rolls the whole batch back.
type StockLedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewStockLedgerUseCase builds the use case. productRepo is pool-bound and used
// only for the read-only sufficiency endpoint.
func NewStockLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, productRepo: productRepo}
}

// ItemInput one product line of a movement request. Quantity must be positive;
// Reason is meaningful for incoming movements only.
type ItemInput struct {
	ProductID string
	Quantity  int64
	Reason    string
}

// validateItems rejects empty batches, non-positive quantities and repeated
// product ids before any database work.
func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if _, dup := seen[it.ProductID]; dup {
			return domain.ErrInvalidInput
		}
		seen[it.ProductID] = struct{}{}
	}
	return nil
}

// sortedByProduct returns a copy of items in product-id order. Locks are always
// taken in this order so two concurrent multi-item batches cannot deadlock.
func sortedByProduct(items []ItemInput) []ItemInput {
	out := make([]ItemInput, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// CheckSufficiency verifies, without writing, that an outgoing batch would not
// drive any product below zero. Returns nil when every line is covered, a
// *domain.InsufficientStockError naming the first short product otherwise.
func (uc *StockLedgerUseCase) CheckSufficiency(ctx context.Context, items []ItemInput) error {
	if err := validateItems(items); err != nil {
		return err
	}
	for _, it := range sortedByProduct(items) {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < it.Quantity {
			return &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Stock,
				Required:    it.Quantity,
			}
		}
	}
	return nil
}

// ApplyOutgoing records an outgoing movement and decrements stock, all-or-nothing.
// The sufficiency check runs against rows locked in the same transaction, so a
// concurrent outgoing on the same product waits for the lock and then sees the
// already-decremented stock.
func (uc *StockLedgerUseCase) ApplyOutgoing(ctx context.Context, employeeID string, items []ItemInput) (string, error) {
	if employeeID == "" {
		return "", domain.ErrInvalidInput
	}
	if err := validateItems(items); err != nil {
		return "", err
	}
	movementID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		mov, err := buildMovement(movementID, entity.MovementTypeOutgoing, employeeID, items, productRepo)
		if err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// ApplyIncoming records an incoming movement and increments stock. Items tagged
// "damaged" additionally raise DamageStock: a damaged unit still counts as
// stock on hand, it is just flagged. Incoming never requires existing stock.
func (uc *StockLedgerUseCase) ApplyIncoming(ctx context.Context, employeeID string, items []ItemInput) (string, error) {
	if employeeID == "" {
		return "", domain.ErrInvalidInput
	}
	return uc.applyIncoming(ctx, entity.MovementTypeIncoming, employeeID, items)
}

// ApplyIncomingAdmin records a bulk administrative incoming with no owning employee.
func (uc *StockLedgerUseCase) ApplyIncomingAdmin(ctx context.Context, items []ItemInput) (string, error) {
	return uc.applyIncoming(ctx, entity.MovementTypeIncomingAdmin, "", items)
}

func (uc *StockLedgerUseCase) applyIncoming(ctx context.Context, movType, employeeID string, items []ItemInput) (string, error) {
	if err := validateItems(items); err != nil {
		return "", err
	}
	movementID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		mov, err := buildMovement(movementID, movType, employeeID, items, productRepo)
		if err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// ReviseMovement replaces a movement's items with newItems. Inside one
// transaction it first undoes every old item's stock effect and only then
// applies the new set, so sufficiency checks for the revision see the reversed
// baseline. The net result equals deleting the movement and creating a fresh
// one with newItems.
func (uc *StockLedgerUseCase) ReviseMovement(ctx context.Context, movementID string, newItems []ItemInput) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}
	if err := validateItems(newItems); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if err := reverseItems(mov, productRepo); err != nil {
			return err
		}
		total, totalQty, movItems, err := applyItems(movementID, mov.Type, newItems, productRepo)
		if err != nil {
			return err
		}
		if err := movRepo.ReplaceItems(movementID, movItems); err != nil {
			return err
		}
		mov.Items = movItems
		mov.Total = total
		mov.TotalQuantity = totalQty
		mov.UpdatedAt = time.Now()
		return movRepo.UpdateHeader(mov)
	})
}

// DeleteMovement removes a movement and reverses its stock effects in the same
// transaction. Reversing an incoming decrements stock, so it runs the same
// sufficiency check as an outgoing: if the received units were already consumed
// the delete is rejected instead of driving stock negative.
func (uc *StockLedgerUseCase) DeleteMovement(ctx context.Context, movementID string) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if err := reverseItems(mov, productRepo); err != nil {
			return err
		}
		return movRepo.Delete(movementID)
	})
}

// buildMovement locks and adjusts every product of the batch, then returns the
// movement ready to persist. Totals are priced at the product's current price.
func buildMovement(movementID, movType, employeeID string, items []ItemInput, productRepo repository.ProductRepository) (*entity.Movement, error) {
	total, totalQty, movItems, err := applyItems(movementID, movType, items, productRepo)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Movement{
		ID:            movementID,
		Type:          movType,
		EmployeeID:    employeeID,
		Total:         total,
		TotalQuantity: totalQty,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         movItems,
	}, nil
}

// applyItems applies the stock effect of each line under row locks and returns
// the computed totals and persisted item rows. Caller must be inside a transaction.
func applyItems(movementID, movType string, items []ItemInput, productRepo repository.ProductRepository) (decimal.Decimal, int64, []entity.MovementItem, error) {
	total := decimal.Zero
	var totalQty int64
	movItems := make([]entity.MovementItem, 0, len(items))

	for _, it := range sortedByProduct(items) {
		product, err := productRepo.GetForUpdate(it.ProductID)
		if err != nil {
			return decimal.Zero, 0, nil, err
		}
		if product == nil {
			return decimal.Zero, 0, nil, domain.ErrNotFound
		}

		stock := product.Stock
		damage := product.DamageStock
		if movType == entity.MovementTypeOutgoing {
			if stock < it.Quantity {
				return decimal.Zero, 0, nil, &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   stock,
					Required:    it.Quantity,
				}
			}
			stock -= it.Quantity
			if damage > stock {
				// DamageStock <= Stock must hold after the decrement.
				damage = stock
			}
		} else {
			stock += it.Quantity
			if it.Reason == entity.ReasonDamaged {
				damage += it.Quantity
			}
		}
		if err := productRepo.UpdateStock(product.ID, stock, damage); err != nil {
			return decimal.Zero, 0, nil, err
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(it.Quantity)))
		totalQty += it.Quantity
		movItems = append(movItems, entity.MovementItem{
			ID:         uuid.New().String(),
			MovementID: movementID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			Reason:     it.Reason,
		})
	}
	return total, totalQty, movItems, nil
}

// reverseItems undoes the stock effect of every item of mov under row locks:
// outgoing items are credited back, incoming items are debited (with a
// sufficiency check, since the goods may have left already). Damaged incoming
// items also release their DamageStock. Caller must be inside a transaction.
func reverseItems(mov *entity.Movement, productRepo repository.ProductRepository) error {
	items := make([]entity.MovementItem, len(mov.Items))
	copy(items, mov.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	outgoing := mov.Outgoing()
	for _, it := range items {
		product, err := productRepo.GetForUpdate(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		stock := product.Stock
		damage := product.DamageStock
		if outgoing {
			stock += it.Quantity
		} else {
			if stock < it.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   stock,
					Required:    it.Quantity,
				}
			}
			stock -= it.Quantity
			if it.Reason == entity.ReasonDamaged {
				damage -= it.Quantity
				if damage < 0 {
					damage = 0
				}
			}
			if damage > stock {
				damage = stock
			}
		}
		if err := productRepo.UpdateStock(product.ID, stock, damage); err != nil {
			return err
		}
	}
	return nil
}
