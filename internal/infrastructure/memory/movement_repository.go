package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// MovementRepository implementa repository.MovementRepository en memoria.
// El log es append-only.
type MovementRepository struct {
	store *Store
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

func (r *MovementRepository) Append(ctx context.Context, movement *entity.MovementRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *movement
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now().UTC()
	}
	r.store.movements = append(r.store.movements, &clone)
	return nil
}

func (r *MovementRepository) ListByWarehouse(ctx context.Context, warehouseID string, filter repository.MovementFilter) ([]*entity.MovementRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*entity.MovementRecord
	for _, m := range r.store.movements {
		if m.WarehouseID != warehouseID {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		clone := *m
		matched = append(matched, &clone)
	}

	// Más recientes primero; a igual fecha conserva el orden de inserción.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}
