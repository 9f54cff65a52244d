package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// InventoryRepository implementa repository.InventoryRepository en memoria.
type InventoryRepository struct {
	store *Store
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository(store *Store) *InventoryRepository {
	return &InventoryRepository{store: store}
}

func (r *InventoryRepository) Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.getLocked(productID, warehouseID), nil
}

// GetForUpdate en memoria equivale a Get: el aislamiento lo da el TxRunner,
// que serializa la operación completa con un mutex dedicado.
func (r *InventoryRepository) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	return r.Get(ctx, productID, warehouseID)
}

func (r *InventoryRepository) getLocked(productID, warehouseID string) *entity.InventoryRecord {
	if rec, ok := r.store.records[recordKey(productID, warehouseID)]; ok {
		clone := *rec
		return &clone
	}
	// Sin registro previo: registro en cero, reservado en cero.
	return &entity.InventoryRecord{
		ProductID:   productID,
		WarehouseID: warehouseID,
		OnHand:      decimal.Zero,
		Reserved:    decimal.Zero,
	}
}

func (r *InventoryRepository) Upsert(ctx context.Context, record *entity.InventoryRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *record
	clone.UpdatedAt = time.Now().UTC()
	r.store.records[recordKey(record.ProductID, record.WarehouseID)] = &clone
	return nil
}

func (r *InventoryRepository) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.InventoryRecord
	for _, rec := range r.store.records {
		if rec.WarehouseID == warehouseID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}
