package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU del catálogo (multi-bodega).
// CriticalStock es el umbral por producto: disponible ≤ umbral marca el
// producto como crítico. El stock por bodega vive en InventoryRecord.
type Product struct {
	ID             string
	CategoryID     string
	Name           string
	Brand          string
	Model          string
	Specifications string
	Description    string
	Unit           string // unidad de medida: шт, м, ...
	SKU            string
	CriticalStock  decimal.Decimal
	Active         bool
}

// IsCritical indica si la cantidad disponible está en o bajo el umbral crítico.
func (p *Product) IsCritical(available decimal.Decimal) bool {
	return available.LessThanOrEqual(p.CriticalStock)
}
