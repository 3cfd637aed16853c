package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements MovementRepository over PostgreSQL (usable with pool or tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass a pool or tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persists the movement header and all of its items.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, employee_id, total, total_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, nullable(movement.EmployeeID),
		movement.Total, movement.TotalQuantity, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return r.insertItems(movement.ID, movement.Items)
}

// GetByID fetches a movement with its items. Returns (nil, nil) when missing.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, type, employee_id, total, total_quantity, created_at, updated_at
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	m.Items = items
	return m, nil
}

// UpdateHeader persists the recomputed totals of a revised movement.
func (r *MovementRepo) UpdateHeader(movement *entity.Movement) error {
	query := `
		UPDATE movements SET total = $2, total_quantity = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Total, movement.TotalQuantity, movement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// ReplaceItems deletes the movement's items and inserts the new set.
func (r *MovementRepo) ReplaceItems(movementID string, items []entity.MovementItem) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM movement_items WHERE movement_id = $1`, movementID); err != nil {
		return fmt.Errorf("delete movement items: %w", err)
	}
	return r.insertItems(movementID, items)
}

// Delete removes the movement and its items.
func (r *MovementRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM movement_items WHERE movement_id = $1`, id); err != nil {
		return fmt.Errorf("delete movement items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List returns movements newest first, optionally filtered by type and created_at range.
func (r *MovementRepo) List(movementType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, employee_id, total, total_quantity, created_at, updated_at
		FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if movementType != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, movementType)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		items, err := r.itemsFor(m.ID)
		if err != nil {
			return nil, err
		}
		m.Items = items
	}
	return list, nil
}

func (r *MovementRepo) insertItems(movementID string, items []entity.MovementItem) error {
	query := `
		INSERT INTO movement_items (id, movement_id, product_id, quantity, reason)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, movementID, it.ProductID, it.Quantity, nullable(it.Reason))
		if err != nil {
			return fmt.Errorf("insert movement item: %w", err)
		}
	}
	return nil
}

func (r *MovementRepo) itemsFor(movementID string) ([]entity.MovementItem, error) {
	query := `
		SELECT id, movement_id, product_id, quantity, reason
		FROM movement_items WHERE movement_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list movement items: %w", err)
	}
	defer rows.Close()

	var items []entity.MovementItem
	for rows.Next() {
		var it entity.MovementItem
		var reason *string
		if err := rows.Scan(&it.ID, &it.MovementID, &it.ProductID, &it.Quantity, &reason); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		if reason != nil {
			it.Reason = *reason
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var employeeID *string
	if err := row.Scan(&m.ID, &m.Type, &employeeID, &m.Total, &m.TotalQuantity,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if employeeID != nil {
		m.EmployeeID = *employeeID
	}
	return &m, nil
}
