package memory

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository en memoria.
// El catálogo es solo lectura: se carga con la semilla y no muta.
type ProductRepository struct {
	store *Store
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("producto sku %s: %w", sku, domain.ErrNotFound)
}

func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// CategoryRepository implementa repository.CategoryRepository en memoria.
type CategoryRepository struct {
	store *Store
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}
