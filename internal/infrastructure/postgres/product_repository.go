package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (solo lectura).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, category_id, name, brand, model, specifications, description,
	unit, sku, critical_stock, is_active`

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por su SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("producto sku %s: %w", sku, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// List devuelve el catálogo completo. El filtrado y ordenamiento corre en la
// capa de aplicación, sobre la lista completa.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Brand, &p.Model, &p.Specifications,
		&p.Description, &p.Unit, &p.SKU, &p.CriticalStock, &p.Active,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (solo lectura).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, icon, color, description, sort_order
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description, &c.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve las categorías por sort_order.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, icon, color, description, sort_order
		FROM categories ORDER BY sort_order`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("list categories scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
