package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, shop_id, employee_id, status, payment_status, total_amount, paid_amount, due_amount, returned_quantity, damage_quantity, created_at, updated_at`

// OrderRepo implements OrderRepository over PostgreSQL (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass a pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists the order header and all of its items.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ShopID, order.EmployeeID, order.Status, order.PaymentStatus,
		order.TotalAmount, order.PaidAmount, order.DueAmount,
		order.ReturnedQuantity, order.DamageQuantity, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range order.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, order.ID, it.ProductID, it.Quantity, it.Price, it.Total); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID fetches an order with its items. Returns (nil, nil) when missing.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// List returns orders newest first, optionally filtered by shop and status.
func (r *OrderRepo) List(shopID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any
	pos := 1
	if shopID != "" {
		query += fmt.Sprintf(" AND shop_id = $%d", pos)
		args = append(args, shopID)
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.itemsFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus sets the order status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdatePayment sets the paid/due amounts and derived payment status.
func (r *OrderRepo) UpdatePayment(id string, paid, due decimal.Decimal, paymentStatus string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE orders SET paid_amount = $2, due_amount = $3, payment_status = $4, updated_at = now()
		WHERE id = $1`, id, paid, due, paymentStatus)
	if err != nil {
		return fmt.Errorf("update order payment: %w", err)
	}
	return nil
}

// UpdateReturns sets the returned/damaged unit counters.
func (r *OrderRepo) UpdateReturns(id string, returnedQty, damageQty int64) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE orders SET returned_quantity = $2, damage_quantity = $3, updated_at = now()
		WHERE id = $1`, id, returnedQty, damageQty)
	if err != nil {
		return fmt.Errorf("update order returns: %w", err)
	}
	return nil
}

// Delete removes the order and its items.
func (r *OrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) itemsFor(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price, total
		FROM order_items WHERE order_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.Total); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(
		&o.ID, &o.ShopID, &o.EmployeeID, &o.Status, &o.PaymentStatus,
		&o.TotalAmount, &o.PaidAmount, &o.DueAmount,
		&o.ReturnedQuantity, &o.DamageQuantity, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
