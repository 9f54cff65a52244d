package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// No hay Delete: las bodegas nunca se eliminan.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	List(ctx context.Context) ([]*entity.Warehouse, error)
}
