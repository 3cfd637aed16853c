package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregate queries for the dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter. Pass a pool (read-only queries).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// StockSummary totals over the products table.
func (r *AnalyticsRepo) StockSummary() (*repository.StockSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(stock), 0),
		       COALESCE(SUM(damage_stock), 0),
		       COALESCE(SUM(stock * price), 0)
		FROM products`
	var s repository.StockSummary
	if err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ProductCount, &s.UnitsOnHand, &s.DamagedUnits, &s.StockValue,
	); err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}

// MovementSummary movement totals per direction over [from, to].
func (r *AnalyticsRepo) MovementSummary(from, to time.Time) (*repository.MovementSummary, error) {
	query := `
		SELECT COALESCE(SUM(total_quantity) FILTER (WHERE type = $3), 0),
		       COALESCE(SUM(total_quantity) FILTER (WHERE type <> $3), 0),
		       COALESCE(SUM(total) FILTER (WHERE type = $3), 0),
		       COALESCE(SUM(total) FILTER (WHERE type <> $3), 0)
		FROM movements
		WHERE created_at >= $1 AND created_at <= $2`
	var s repository.MovementSummary
	if err := r.q.QueryRow(context.Background(), query, from, to, entity.MovementTypeOutgoing).Scan(
		&s.OutgoingQuantity, &s.IncomingQuantity, &s.OutgoingTotal, &s.IncomingTotal,
	); err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	return &s, nil
}

// TopOutgoingProducts products ranked by outgoing quantity over [from, to].
func (r *AnalyticsRepo) TopOutgoingProducts(from, to time.Time, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT mi.product_id, COALESCE(p.name, '(deleted product)'), SUM(mi.quantity)
		FROM movement_items mi
		JOIN movements m ON m.id = mi.movement_id
		LEFT JOIN products p ON p.id = mi.product_id
		WHERE m.type = $3 AND m.created_at >= $1 AND m.created_at <= $2
		GROUP BY mi.product_id, p.name
		ORDER BY SUM(mi.quantity) DESC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, from, to, entity.MovementTypeOutgoing, limit)
	if err != nil {
		return nil, fmt.Errorf("top outgoing products: %w", err)
	}
	defer rows.Close()

	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// OrdersByStatus order counts grouped by status.
func (r *AnalyticsRepo) OrdersByStatus() ([]repository.OrderStatusCount, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	defer rows.Close()

	var list []repository.OrderStatusCount
	for rows.Next() {
		var c repository.OrderStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan order status count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
