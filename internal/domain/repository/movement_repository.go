package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// MovementFilter acota el listado de movimientos. Campos en cero no filtran.
type MovementFilter struct {
	ProductID string
	Type      string // in, out
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia del log de movimientos.
// El log es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Append(ctx context.Context, movement *entity.MovementRecord) error
	// ListByWarehouse devuelve movimientos de la bodega, más recientes primero.
	ListByWarehouse(ctx context.Context, warehouseID string, filter MovementFilter) ([]*entity.MovementRecord, error)
}
