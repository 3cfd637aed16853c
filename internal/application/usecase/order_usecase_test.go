package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	co := *o
	co.Items = append([]entity.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &co
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	co := *o
	co.Items = append([]entity.OrderItem(nil), o.Items...)
	return &co, nil
}

func (r *fakeOrderRepo) List(shopID, status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if shopID != "" && o.ShopID != shopID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		co := *o
		out = append(out, &co)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	r.orders[id].Status = status
	return nil
}

func (r *fakeOrderRepo) UpdatePayment(id string, paid, due decimal.Decimal, paymentStatus string) error {
	o := r.orders[id]
	o.PaidAmount = paid
	o.DueAmount = due
	o.PaymentStatus = paymentStatus
	return nil
}

func (r *fakeOrderRepo) UpdateReturns(id string, returnedQty, damageQty int64) error {
	o := r.orders[id]
	o.ReturnedQuantity = returnedQty
	o.DamageQuantity = damageQty
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeShopRepo struct {
	shops map[string]*entity.Shop
}

func (r *fakeShopRepo) Create(s *entity.Shop) error { r.shops[s.ID] = s; return nil }
func (r *fakeShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeShopRepo) Update(s *entity.Shop) error { r.shops[s.ID] = s; return nil }
func (r *fakeShopRepo) Delete(id string) error      { delete(r.shops, id); return nil }
func (r *fakeShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range r.shops {
		out = append(out, s)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.products, id); return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) UpdateStock(id string, stock, damageStock int64) error {
	p := r.products[id]
	p.Stock = stock
	p.DamageStock = damageStock
	return nil
}

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	orderRepo := newFakeOrderRepo()
	shopRepo := &fakeShopRepo{shops: map[string]*entity.Shop{
		"shop-1": {ID: "shop-1", Name: "Corner Store"},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", ProductCode: "P-001", Name: "Soap", Price: decimal.RequireFromString("2.50"), Stock: 10},
		"p2": {ID: "p2", ProductCode: "P-002", Name: "Shampoo", Price: decimal.RequireFromString("5.00"), Stock: 4},
	}}
	return NewOrderUseCase(orderRepo, shopRepo, productRepo), orderRepo, productRepo
}

func TestOrderCreatePricesLines(t *testing.T) {
	uc, repo, productRepo := newOrderFixture()

	custom := decimal.RequireFromString("4.75")
	out, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},                 // product price 2.50
			{ProductID: "p2", Quantity: 1, Price: &custom}, // request price wins
		},
		PaidAmount: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("9.75")))
	assert.True(t, out.DueAmount.Equal(decimal.RequireFromString("6.75")))
	assert.Equal(t, entity.OrderStatusPlaced, out.Status)
	assert.Equal(t, entity.PaymentStatusDue, out.PaymentStatus)
	require.Len(t, out.Items, 2)

	stored := repo.orders[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "emp-1", stored.EmployeeID)

	// Placing an order records demand only.
	assert.Equal(t, int64(10), productRepo.products["p1"].Stock)
	assert.Equal(t, int64(4), productRepo.products["p2"].Stock)
}

func TestOrderCreateValidation(t *testing.T) {
	uc, _, _ := newOrderFixture()
	paid := decimal.Zero

	_, err := uc.Create("", dto.CreateOrderRequest{ShopID: "shop-1", Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("emp-1", dto.CreateOrderRequest{ShopID: "shop-1", PaidAmount: paid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty items")

	_, err = uc.Create("emp-1", dto.CreateOrderRequest{ShopID: "ghost", Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown shop")

	_, err = uc.Create("emp-1", dto.CreateOrderRequest{ShopID: "shop-1", Items: []dto.OrderItemRequest{{ProductID: "ghost", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown product")

	_, err = uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID:     "shop-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		PaidAmount: decimal.RequireFromString("100.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "paid amount above total")
}

func TestOrderStatusTransitions(t *testing.T) {
	uc, repo, _ := newOrderFixture()

	out, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(out.ID, entity.OrderStatusShipped))
	require.NoError(t, uc.UpdateStatus(out.ID, entity.OrderStatusDelivered))
	assert.Equal(t, entity.OrderStatusDelivered, repo.orders[out.ID].Status)

	err = uc.UpdateStatus(out.ID, entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrConflict, "delivered is terminal")

	err = uc.UpdateStatus(out.ID, "TELEPORTED")
	assert.ErrorIs(t, err, domain.ErrConflict, "unknown status rejected")

	assert.ErrorIs(t, uc.UpdateStatus("missing", entity.OrderStatusShipped), domain.ErrNotFound)
}

func TestOrderRecordPayment(t *testing.T) {
	uc, repo, _ := newOrderFixture()

	out, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p2", Quantity: 2}}, // total 10.00
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusUnpaid, out.PaymentStatus)

	require.NoError(t, uc.RecordPayment(out.ID, decimal.RequireFromString("4.00")))
	stored := repo.orders[out.ID]
	assert.Equal(t, entity.PaymentStatusDue, stored.PaymentStatus)
	assert.True(t, stored.DueAmount.Equal(decimal.RequireFromString("6.00")))

	require.NoError(t, uc.RecordPayment(out.ID, decimal.RequireFromString("6.00")))
	stored = repo.orders[out.ID]
	assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)
	assert.True(t, stored.DueAmount.IsZero())

	err = uc.RecordPayment(out.ID, decimal.RequireFromString("0.01"))
	assert.ErrorIs(t, err, domain.ErrConflict, "cannot pay past the total")

	assert.ErrorIs(t, uc.RecordPayment(out.ID, decimal.Zero), domain.ErrInvalidInput)
}

func TestOrderRecordReturns(t *testing.T) {
	uc, repo, _ := newOrderFixture()

	out, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.RecordReturns(out.ID, 2, 1))
	stored := repo.orders[out.ID]
	assert.Equal(t, int64(2), stored.ReturnedQuantity)
	assert.Equal(t, int64(1), stored.DamageQuantity)

	err = uc.RecordReturns(out.ID, 4, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "returns cannot exceed ordered quantity")

	assert.ErrorIs(t, uc.RecordReturns(out.ID, -1, 0), domain.ErrInvalidInput)
}

func TestOrderDeleteOnlyBeforeShipping(t *testing.T) {
	uc, repo, _ := newOrderFixture()

	out, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(out.ID, entity.OrderStatusShipped))
	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrConflict)

	require.NoError(t, uc.UpdateStatus(out.ID, entity.OrderStatusCancelled))
	require.NoError(t, uc.Delete(out.ID))
	assert.Nil(t, repo.orders[out.ID])
}

func TestOrderListFiltersStatus(t *testing.T) {
	uc, _, _ := newOrderFixture()

	first, err := uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = uc.Create("emp-1", dto.CreateOrderRequest{
		ShopID: "shop-1",
		Items:  []dto.OrderItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, uc.UpdateStatus(first.ID, entity.OrderStatusShipped))

	out, err := uc.List("shop-1", entity.OrderStatusShipped, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	assert.Equal(t, first.ID, out.Orders[0].ID)

	_, err = uc.List("", "BOGUS", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
