package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// OrderUseCase orders taken by SRs for shops. Creating an order records demand
// only; product stock changes when goods physically move (an outgoing movement
// at fulfillment), never here.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, shopRepo: shopRepo, productRepo: productRepo}
}

// Create validates shop and products, prices each line (request price wins,
// product price otherwise) and writes the order with its items atomically.
func (uc *OrderUseCase) Create(employeeID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if employeeID == "" || in.ShopID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaidAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	shop, err := uc.shopRepo.GetByID(in.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}

	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		price := product.Price
		if it.Price != nil {
			if it.Price.LessThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			price = *it.Price
		}
		lineTotal := price.Mul(decimal.NewFromInt(it.Quantity))
		total = total.Add(lineTotal)
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
			Total:     lineTotal,
		})
	}

	if in.PaidAmount.GreaterThan(total) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:            orderID,
		ShopID:        in.ShopID,
		EmployeeID:    employeeID,
		Status:        entity.OrderStatusPlaced,
		PaymentStatus: paymentStatusFor(in.PaidAmount, total),
		TotalAmount:   total,
		PaidAmount:    in.PaidAmount,
		DueAmount:     total.Sub(in.PaidAmount),
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         items,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID fetches an order with its items.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lists orders, optionally filtered by shop and status.
func (uc *OrderUseCase) List(shopID, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.List(shopID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Orders: out,
		Page:   dto.PageResponse{Limit: limit, Offset: offset, Total: len(out)},
	}, nil
}

// UpdateStatus applies a status transition. Cancelled and Delivered are terminal.
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, status) {
		return domain.ErrConflict
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

// RecordPayment adds a payment against the order's due amount.
func (uc *OrderUseCase) RecordPayment(id string, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	paid := order.PaidAmount.Add(amount)
	if paid.GreaterThan(order.TotalAmount) {
		return domain.ErrConflict
	}
	due := order.TotalAmount.Sub(paid)
	return uc.orderRepo.UpdatePayment(id, paid, due, paymentStatusFor(paid, order.TotalAmount))
}

// RecordReturns sets the returned/damaged unit counters of the order.
func (uc *OrderUseCase) RecordReturns(id string, returnedQty, damageQty int64) error {
	if returnedQty < 0 || damageQty < 0 {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	var totalQty int64
	for _, it := range order.Items {
		totalQty += it.Quantity
	}
	if returnedQty+damageQty > totalQty {
		return domain.ErrInvalidInput
	}
	return uc.orderRepo.UpdateReturns(id, returnedQty, damageQty)
}

// Delete removes an order that has not shipped yet.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPlaced && order.Status != entity.OrderStatusCancelled {
		return domain.ErrConflict
	}
	return uc.orderRepo.Delete(id)
}

func paymentStatusFor(paid, total decimal.Decimal) string {
	switch {
	case paid.IsZero():
		return entity.PaymentStatusUnpaid
	case paid.GreaterThanOrEqual(total):
		return entity.PaymentStatusPaid
	default:
		return entity.PaymentStatusDue
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		ShopID:           o.ShopID,
		EmployeeID:       o.EmployeeID,
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		TotalAmount:      o.TotalAmount,
		PaidAmount:       o.PaidAmount,
		DueAmount:        o.DueAmount,
		ReturnedQuantity: o.ReturnedQuantity,
		DamageQuantity:   o.DamageQuantity,
		CreatedAt:        o.CreatedAt,
		Items:            items,
	}
}
