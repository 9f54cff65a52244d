package catalog

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una unidad atómica:
// transacción SQL en Postgres, sección crítica en memoria. Garantiza
// todo-o-nada para las operaciones de stock y serializa envíos duplicados
// concurrentes sobre el mismo registro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error) error
}
