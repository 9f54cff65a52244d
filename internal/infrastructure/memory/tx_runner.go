package memory

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// TxRunner implementa catalog.TxRunner serializando la operación completa con
// un mutex del Store. Dos envíos concurrentes sobre el mismo registro corren
// uno detrás del otro; el segundo ve el stock que dejó el primero.
type TxRunner struct {
	store *Store
}

var _ catalog.TxRunner = (*TxRunner)(nil)

func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn dentro de la sección crítica. Los repositorios entregados
// operan sobre el mismo Store; el caso de uso valida antes de mutar, así que
// un error dentro de fn no deja mutaciones parciales.
func (t *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()
	return fn(NewInventoryRepository(t.store), NewMovementRepository(t.store))
}
