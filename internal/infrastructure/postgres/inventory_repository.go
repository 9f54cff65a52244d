package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el registro de stock de un producto en una bodega.
// Devuelve un registro en cero si no existe fila.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, on_hand, reserved, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2`
	return r.get(ctx, query, productID, warehouseID)
}

// GetForUpdate obtiene el registro y bloquea la fila para update (SELECT FOR UPDATE).
// Dos operaciones concurrentes sobre el mismo registro se serializan aquí.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, on_hand, reserved, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.get(ctx, query, productID, warehouseID)
}

func (r *InventoryRepo) get(ctx context.Context, query, productID, warehouseID string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.OnHand, &rec.Reserved, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{
				ProductID:   productID,
				WarehouseID: warehouseID,
				OnHand:      decimal.Zero,
				Reserved:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return &rec, nil
}

// Upsert inserta o actualiza el registro (por producto y bodega).
func (r *InventoryRepo) Upsert(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (product_id, warehouse_id, on_hand, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET on_hand = EXCLUDED.on_hand, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(ctx, query, record.ProductID, record.WarehouseID, record.OnHand, record.Reserved)
	if err != nil {
		return fmt.Errorf("upsert inventory record: %w", err)
	}
	return nil
}

// ListByWarehouse devuelve todos los registros de stock de la bodega.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, on_hand, reserved, updated_at
		FROM inventory_records WHERE warehouse_id = $1`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory records: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ProductID, &rec.WarehouseID, &rec.OnHand, &rec.Reserved, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list inventory records scan: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
