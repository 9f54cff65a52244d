package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// InventoryRepository define el puerto para consultar/actualizar el stock por
// (producto, bodega). Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// Get devuelve el registro o un registro en cero si no existe.
	Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE en Postgres,
	// serializado por mutex en memoria).
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error)
	Upsert(ctx context.Context, record *entity.InventoryRecord) error
	ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryRecord, error)
}
