package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del log de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append persiste un movimiento.
func (r *MovementRepo) Append(ctx context.Context, movement *entity.MovementRecord) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements
			(id, warehouse_id, product_id, type, quantity, user_id, recipient, destination, comment, remaining_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.WarehouseID, movement.ProductID, movement.Type,
		movement.Quantity, movement.UserID, movement.Recipient, movement.Destination,
		movement.Comment, movement.RemainingStock,
	)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// ListByWarehouse devuelve movimientos filtrados, más recientes primero.
func (r *MovementRepo) ListByWarehouse(ctx context.Context, warehouseID string, filter repository.MovementFilter) ([]*entity.MovementRecord, error) {
	query := `
		SELECT id, warehouse_id, product_id, type, quantity, user_id,
		       recipient, destination, comment, remaining_stock, created_at
		FROM movements
		WHERE warehouse_id = $1
		  AND ($2 = '' OR product_id = $2)
		  AND ($3 = '' OR type = $3)
		  AND ($4::timestamptz IS NULL OR created_at >= $4)
		  AND ($5::timestamptz IS NULL OR created_at <= $5)
		ORDER BY created_at DESC, id
		LIMIT NULLIF($6, 0) OFFSET $7`
	rows, err := r.q.Query(ctx, query,
		warehouseID, filter.ProductID, filter.Type, filter.From, filter.To,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovementRecord
	for rows.Next() {
		var m entity.MovementRecord
		if err := rows.Scan(
			&m.ID, &m.WarehouseID, &m.ProductID, &m.Type, &m.Quantity, &m.UserID,
			&m.Recipient, &m.Destination, &m.Comment, &m.RemainingStock, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list movements scan: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
