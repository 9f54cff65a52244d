package memory

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// WarehouseRepository implementa repository.WarehouseRepository en memoria.
type WarehouseRepository struct {
	store *Store
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

func NewWarehouseRepository(store *Store) *WarehouseRepository {
	return &WarehouseRepository{store: store}
}

func (r *WarehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.warehouses {
		if w.ID == warehouse.ID {
			return fmt.Errorf("bodega %s: %w", warehouse.ID, domain.ErrDuplicate)
		}
	}
	clone := *warehouse
	r.store.warehouses = append(r.store.warehouses, &clone)
	return nil
}

func (r *WarehouseRepository) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, w := range r.store.warehouses {
		if w.ID == id {
			clone := *w
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("bodega %s: %w", id, domain.ErrNotFound)
}

func (r *WarehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, w := range r.store.warehouses {
		if w.ID == warehouse.ID {
			clone := *warehouse
			r.store.warehouses[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("bodega %s: %w", warehouse.ID, domain.ErrNotFound)
}

func (r *WarehouseRepository) List(ctx context.Context) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}
