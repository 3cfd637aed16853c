package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// memStore is the shared state behind the in-memory repos. The tx runner
// clones it per transaction and copies the clone back only on commit, so a
// failing transaction leaves the store untouched, like a rollback would.
type memStore struct {
	products  map[string]*entity.Product
	movements map[string]*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]*entity.Product{},
		movements: map[string]*entity.Movement{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, m := range s.movements {
		cm := *m
		cm.Items = append([]entity.MovementItem(nil), m.Items...)
		c.movements[id] = &cm
	}
	return c
}

type memProductRepo struct {
	store *memStore
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) UpdateStock(id string, stock, damageStock int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.DamageStock = damageStock
	return nil
}

type memMovementRepo struct {
	store      *memStore
	failCreate error
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cm := *m
	cm.Items = append([]entity.MovementItem(nil), m.Items...)
	r.store.movements[m.ID] = &cm
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cm := *m
	cm.Items = append([]entity.MovementItem(nil), m.Items...)
	return &cm, nil
}

func (r *memMovementRepo) UpdateHeader(m *entity.Movement) error {
	stored, ok := r.store.movements[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Total = m.Total
	stored.TotalQuantity = m.TotalQuantity
	stored.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *memMovementRepo) ReplaceItems(movementID string, items []entity.MovementItem) error {
	stored, ok := r.store.movements[movementID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Items = append([]entity.MovementItem(nil), items...)
	return nil
}

func (r *memMovementRepo) Delete(id string) error {
	delete(r.store.movements, id)
	return nil
}

func (r *memMovementRepo) List(movementType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.store.movements {
		if movementType != "" && m.Type != movementType {
			continue
		}
		cm := *m
		out = append(out, &cm)
	}
	return out, nil
}

type memTxRunner struct {
	store              *memStore
	failMovementCreate error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	tx := r.store.clone()
	movRepo := &memMovementRepo{store: tx, failCreate: r.failMovementCreate}
	productRepo := &memProductRepo{store: tx}
	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	*r.store = *tx
	return nil
}

func newLedger(store *memStore) (*StockLedgerUseCase, *memTxRunner) {
	runner := &memTxRunner{store: store}
	return NewStockLedgerUseCase(runner, &memProductRepo{store: store}), runner
}

func seedProduct(store *memStore, id string, price string, stock, damage int64) {
	store.products[id] = &entity.Product{
		ID:          id,
		ProductCode: "code-" + id,
		Name:        "Product " + id,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		DamageStock: damage,
	}
}

func TestApplyOutgoingDecrementsStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "2.50", 10, 0)
	uc, _ := newLedger(store)

	movID, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{{ProductID: "p1", Quantity: 4}})
	require.NoError(t, err)
	require.NotEmpty(t, movID)

	assert.Equal(t, int64(6), store.products["p1"].Stock)

	mov := store.movements[movID]
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeOutgoing, mov.Type)
	assert.Equal(t, "emp-1", mov.EmployeeID)
	assert.Equal(t, int64(4), mov.TotalQuantity)
	assert.True(t, mov.Total.Equal(decimal.RequireFromString("10.00")), "total = price * quantity")
	require.Len(t, mov.Items, 1)
	assert.Equal(t, "p1", mov.Items[0].ProductID)
}

func TestApplyOutgoingInsufficientStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 3, 0)
	uc, _ := newLedger(store)

	_, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{{ProductID: "p1", Quantity: 5}})
	require.Error(t, err)

	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "p1", short.ProductID)
	assert.Equal(t, "Product p1", short.ProductName)
	assert.Equal(t, int64(3), short.Available)
	assert.Equal(t, int64(5), short.Required)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), store.products["p1"].Stock, "stock unchanged on failure")
	assert.Empty(t, store.movements, "no movement recorded on failure")
}

func TestApplyOutgoingMultiItemAllOrNothing(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "a", "1.00", 10, 0)
	seedProduct(store, "b", "1.00", 2, 0)
	uc, _ := newLedger(store)

	_, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{
		{ProductID: "a", Quantity: 5},
		{ProductID: "b", Quantity: 5},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.products["a"].Stock, "covered line rolled back with the batch")
	assert.Equal(t, int64(2), store.products["b"].Stock)
	assert.Empty(t, store.movements)
}

func TestApplyOutgoingUnknownProduct(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "a", "1.00", 10, 0)
	uc, _ := newLedger(store)

	_, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{
		{ProductID: "a", Quantity: 1},
		{ProductID: "ghost", Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.products["a"].Stock)
	assert.Empty(t, store.movements)
}

func TestApplyOutgoingValidation(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 10, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	_, err := uc.ApplyOutgoing(ctx, "", []ItemInput{{ProductID: "p1", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "employee required")

	_, err = uc.ApplyOutgoing(ctx, "emp-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty batch")

	_, err = uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "non-positive quantity")

	_, err = uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "duplicate product ids")

	assert.Equal(t, int64(10), store.products["p1"].Stock)
}

func TestApplyIncomingIncrementsAndFlagsDamage(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "3.00", 1, 0)
	seedProduct(store, "p2", "1.00", 0, 0)
	uc, _ := newLedger(store)

	movID, err := uc.ApplyIncoming(context.Background(), "emp-7", []ItemInput{
		{ProductID: "p1", Quantity: 4, Reason: entity.ReasonDamaged},
		{ProductID: "p2", Quantity: 2, Reason: entity.ReasonReturned},
	})
	require.NoError(t, err)

	p1 := store.products["p1"]
	assert.Equal(t, int64(5), p1.Stock, "damaged units still count as stock on hand")
	assert.Equal(t, int64(4), p1.DamageStock)

	p2 := store.products["p2"]
	assert.Equal(t, int64(2), p2.Stock)
	assert.Equal(t, int64(0), p2.DamageStock, "returned units are not flagged")

	mov := store.movements[movID]
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeIncoming, mov.Type)
	assert.Equal(t, "emp-7", mov.EmployeeID)
	assert.Equal(t, int64(6), mov.TotalQuantity)
}

func TestApplyIncomingAdminHasNoEmployee(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 0, 0)
	uc, _ := newLedger(store)

	movID, err := uc.ApplyIncomingAdmin(context.Background(), []ItemInput{{ProductID: "p1", Quantity: 100}})
	require.NoError(t, err)

	mov := store.movements[movID]
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeIncomingAdmin, mov.Type)
	assert.Empty(t, mov.EmployeeID)
	assert.Equal(t, int64(100), store.products["p1"].Stock)
}

func TestApplyOutgoingCapsDamageToStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 5, 5)
	uc, _ := newLedger(store)

	_, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{{ProductID: "p1", Quantity: 3}})
	require.NoError(t, err)

	p := store.products["p1"]
	assert.Equal(t, int64(2), p.Stock)
	assert.Equal(t, int64(2), p.DamageStock, "DamageStock never exceeds Stock")
}

func TestCheckSufficiency(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 5, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.CheckSufficiency(ctx, []ItemInput{{ProductID: "p1", Quantity: 5}}))

	err := uc.CheckSufficiency(ctx, []ItemInput{{ProductID: "p1", Quantity: 6}})
	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, int64(5), short.Available)

	err2 := uc.CheckSufficiency(ctx, []ItemInput{{ProductID: "p1", Quantity: 6}})
	assert.Equal(t, err.Error(), err2.Error(), "same verdict with no intervening writes")
	assert.Equal(t, int64(5), store.products["p1"].Stock, "check never writes")

	assert.ErrorIs(t, uc.CheckSufficiency(ctx, []ItemInput{{ProductID: "ghost", Quantity: 1}}), domain.ErrNotFound)
}

func TestReviseOutgoingAppliesNetChange(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "2.00", 10, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 4}})
	require.NoError(t, err)
	require.Equal(t, int64(6), store.products["p1"].Stock)

	require.NoError(t, uc.ReviseMovement(ctx, movID, []ItemInput{{ProductID: "p1", Quantity: 2}}))

	assert.Equal(t, int64(8), store.products["p1"].Stock, "undo 4, apply 2")
	mov := store.movements[movID]
	assert.Equal(t, int64(2), mov.TotalQuantity)
	assert.True(t, mov.Total.Equal(decimal.RequireFromString("4.00")))
	require.Len(t, mov.Items, 1)
	assert.Equal(t, int64(2), mov.Items[0].Quantity)
}

func TestReviseOutgoingSwapsProducts(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "a", "1.00", 10, 0)
	seedProduct(store, "b", "1.00", 10, 0)
	seedProduct(store, "c", "1.00", 10, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{
		{ProductID: "a", Quantity: 3},
		{ProductID: "b", Quantity: 2},
	})
	require.NoError(t, err)

	// Keep a (new qty), drop b, add c.
	require.NoError(t, uc.ReviseMovement(ctx, movID, []ItemInput{
		{ProductID: "a", Quantity: 1},
		{ProductID: "c", Quantity: 5},
	}))

	assert.Equal(t, int64(9), store.products["a"].Stock)
	assert.Equal(t, int64(10), store.products["b"].Stock, "removed line fully restored")
	assert.Equal(t, int64(5), store.products["c"].Stock, "added line decremented")

	mov := store.movements[movID]
	assert.Equal(t, int64(6), mov.TotalQuantity)
	require.Len(t, mov.Items, 2)
}

func TestReviseOutgoingSufficiencySeesReversedBaseline(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 5, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 5}})
	require.NoError(t, err)
	require.Equal(t, int64(0), store.products["p1"].Stock)

	// Whole original quantity is credited back before the new set is checked,
	// so revising 5 -> 5 against a product with nothing left still succeeds.
	require.NoError(t, uc.ReviseMovement(ctx, movID, []ItemInput{{ProductID: "p1", Quantity: 5}}))
	assert.Equal(t, int64(0), store.products["p1"].Stock)
}

func TestReviseOutgoingRollsBackOnInsufficiency(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 5, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 4}})
	require.NoError(t, err)

	err = uc.ReviseMovement(ctx, movID, []ItemInput{{ProductID: "p1", Quantity: 6}})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(1), store.products["p1"].Stock, "reversal inside the failed tx is rolled back")
	mov := store.movements[movID]
	assert.Equal(t, int64(4), mov.TotalQuantity, "movement keeps its old items")
	require.Len(t, mov.Items, 1)
	assert.Equal(t, int64(4), mov.Items[0].Quantity)
}

func TestReviseIncomingReleasesDamage(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 0, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyIncoming(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 5, Reason: entity.ReasonDamaged}})
	require.NoError(t, err)
	require.Equal(t, int64(5), store.products["p1"].DamageStock)

	require.NoError(t, uc.ReviseMovement(ctx, movID, []ItemInput{{ProductID: "p1", Quantity: 2, Reason: entity.ReasonReturned}}))

	p := store.products["p1"]
	assert.Equal(t, int64(2), p.Stock)
	assert.Equal(t, int64(0), p.DamageStock, "damage flag released with the revised-away items")
}

func TestReviseMovementNotFound(t *testing.T) {
	store := newMemStore()
	uc, _ := newLedger(store)

	err := uc.ReviseMovement(context.Background(), "missing", []ItemInput{{ProductID: "p1", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOutgoingRestoresStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 10, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	movID, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 7}})
	require.NoError(t, err)
	require.Equal(t, int64(3), store.products["p1"].Stock)

	require.NoError(t, uc.DeleteMovement(ctx, movID))

	assert.Equal(t, int64(10), store.products["p1"].Stock)
	assert.Empty(t, store.movements)
}

func TestDeleteIncomingRequiresRemainingStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 0, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	inID, err := uc.ApplyIncoming(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 5}})
	require.NoError(t, err)

	// 4 of the received 5 already left again.
	_, err = uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 4}})
	require.NoError(t, err)

	err = uc.DeleteMovement(ctx, inID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "cannot take back units that were consumed")

	assert.Equal(t, int64(1), store.products["p1"].Stock)
	assert.NotNil(t, store.movements[inID], "movement kept when reversal fails")
}

func TestDeleteMovementNotFound(t *testing.T) {
	store := newMemStore()
	uc, _ := newLedger(store)
	assert.ErrorIs(t, uc.DeleteMovement(context.Background(), "missing"), domain.ErrNotFound)
}

func TestApplyOutgoingRollsBackWhenCreateFails(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 10, 0)
	uc, runner := newLedger(store)
	runner.failMovementCreate = errors.New("connection reset")

	_, err := uc.ApplyOutgoing(context.Background(), "emp-1", []ItemInput{{ProductID: "p1", Quantity: 4}})
	require.Error(t, err)

	assert.Equal(t, int64(10), store.products["p1"].Stock, "stock decrement rolled back with the failed insert")
	assert.Empty(t, store.movements)
}

func TestBackToBackOutgoingsNeverOverdraw(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "1.00", 5, 0)
	uc, _ := newLedger(store)
	ctx := context.Background()

	_, err := uc.ApplyOutgoing(ctx, "emp-1", []ItemInput{{ProductID: "p1", Quantity: 3}})
	require.NoError(t, err)

	_, err = uc.ApplyOutgoing(ctx, "emp-2", []ItemInput{{ProductID: "p1", Quantity: 3}})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(2), store.products["p1"].Stock)
	assert.GreaterOrEqual(t, store.products["p1"].Stock, int64(0), "stock never negative")
}
