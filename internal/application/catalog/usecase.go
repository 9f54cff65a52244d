package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// CatalogUseCase arma el dashboard de inventario de la bodega actual:
// cabecera con contadores, pestañas de categorías y tarjetas de producto
// derivadas del pipeline de filtrado.
type CatalogUseCase struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	inventoryRepo repository.InventoryRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Dashboard deriva el dashboard completo para la bodega. Los contadores de la
// cabecera usan el catálogo completo (no el filtrado), igual que el selector
// de pestañas; solo las tarjetas reflejan la consulta.
func (uc *CatalogUseCase) Dashboard(ctx context.Context, warehouse *entity.Warehouse, q Query) (*dto.InventoryDashboardDTO, error) {
	if warehouse == nil {
		return nil, domain.ErrInvalidInput
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := uc.inventoryRepo.ListByWarehouse(ctx, warehouse.ID)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*entity.InventoryRecord, len(records))
	for _, rec := range records {
		byProduct[rec.ProductID] = rec
	}
	lookup := func(productID string) *entity.InventoryRecord { return byProduct[productID] }

	filtered := FilterProducts(products, lookup, q)

	categoryName := make(map[string]string, len(categories))
	tabs := make([]dto.CategoryTabDTO, 0, len(categories))
	for _, c := range categories {
		categoryName[c.ID] = c.Name
		count := 0
		for _, p := range products {
			if p.CategoryID == c.ID {
				count++
			}
		}
		tabs = append(tabs, dto.CategoryTabDTO{
			ID:           c.ID,
			Name:         c.Name,
			Icon:         c.Icon,
			Color:        c.Color,
			SortOrder:    c.SortOrder,
			ProductCount: count,
		})
	}
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].SortOrder < tabs[j].SortOrder })

	cards := make([]dto.ProductCardDTO, 0, len(filtered))
	for _, p := range filtered {
		rec := byProduct[p.ID]
		available := rec.Available()
		card := dto.ProductCardDTO{
			ID:             p.ID,
			CategoryID:     p.CategoryID,
			CategoryName:   categoryName[p.CategoryID],
			Name:           p.Name,
			Brand:          p.Brand,
			Model:          p.Model,
			Specifications: p.Specifications,
			Unit:           p.Unit,
			SKU:            p.SKU,
			Available:      available,
			CriticalStock:  p.CriticalStock,
			IsCritical:     p.IsCritical(available),
		}
		if rec != nil {
			card.OnHand = rec.OnHand
			card.Reserved = rec.Reserved
		} else {
			card.OnHand = decimal.Zero
			card.Reserved = decimal.Zero
		}
		cards = append(cards, card)
	}

	criticalCount := 0
	totalOnHand := decimal.Zero
	for _, p := range products {
		rec := byProduct[p.ID]
		if p.IsCritical(rec.Available()) {
			criticalCount++
		}
	}
	for _, rec := range records {
		totalOnHand = totalOnHand.Add(rec.OnHand)
	}

	return &dto.InventoryDashboardDTO{
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
		TotalProducts: len(filtered),
		CriticalCount: criticalCount,
		TotalOnHand:   abbreviate(totalOnHand),
		Categories:    tabs,
		Products:      cards,
	}, nil
}

// AvailableQuantity devuelve la cantidad disponible de un producto en una bodega.
func (uc *CatalogUseCase) AvailableQuantity(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	rec, err := uc.inventoryRepo.Get(ctx, productID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	return rec.Available(), nil
}

// abbreviate abrevia cantidades grandes para la cabecera: 4.4K, 1.2M.
func abbreviate(d decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case d.GreaterThanOrEqual(million):
		return strings.TrimSuffix(d.Div(million).Round(1).String(), ".0") + "M"
	case d.GreaterThanOrEqual(thousand):
		return strings.TrimSuffix(d.Div(thousand).Round(1).String(), ".0") + "K"
	default:
		return d.String()
	}
}
