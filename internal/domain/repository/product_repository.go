package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El catálogo es referencia estática en este alcance: solo lectura.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
