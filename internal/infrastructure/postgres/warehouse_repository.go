package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, location, address, description, is_active, capacity, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.Address,
		warehouse.Description, warehouse.Active, warehouse.Capacity, warehouse.ManagerID,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert warehouse %s: %w", warehouse.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID con sus contadores agregados.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := warehouseSelect + ` WHERE w.id = $1 GROUP BY w.id`
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bodega %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, location = $3, address = $4, description = $5,
		    is_active = $6, capacity = $7, manager_id = $8, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.Address,
		warehouse.Description, warehouse.Active, warehouse.Capacity, warehouse.ManagerID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("bodega %s: %w", warehouse.ID, domain.ErrNotFound)
	}
	return nil
}

// List devuelve todas las bodegas con sus contadores, por fecha de creación.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	query := warehouseSelect + ` GROUP BY w.id ORDER BY w.created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("list warehouses scan: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// warehouseSelect calcula los contadores del selector de bodegas en la misma
// consulta: productos con stock, movimientos de hoy, productos críticos y
// última actividad.
const warehouseSelect = `
	SELECT w.id, w.name, w.location, w.address, w.description, w.is_active,
	       w.capacity, w.manager_id, w.created_at, w.updated_at,
	       COUNT(DISTINCT i.product_id) FILTER (WHERE i.on_hand > 0)       AS total_products,
	       COUNT(DISTINCT m.id) FILTER (WHERE m.created_at::date = CURRENT_DATE) AS movements_today,
	       COUNT(DISTINCT i.product_id) FILTER (
	           WHERE i.on_hand - i.reserved <= p.critical_stock)          AS critical_stock,
	       COALESCE(MAX(m.created_at), w.updated_at)                      AS last_activity
	FROM warehouses w
	LEFT JOIN inventory_records i ON i.warehouse_id = w.id
	LEFT JOIN products          p ON p.id           = i.product_id
	LEFT JOIN movements         m ON m.warehouse_id = w.id`

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Name, &w.Location, &w.Address, &w.Description, &w.Active,
		&w.Capacity, &w.ManagerID, &w.CreatedAt, &w.UpdatedAt,
		&w.Stats.TotalProducts, &w.Stats.MovementsToday, &w.Stats.CriticalStock,
		&w.Stats.LastActivity,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
