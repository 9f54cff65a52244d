package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord representa el stock de un producto en una bodega.
// La pareja (ProductID, WarehouseID) es la clave natural: un registro por pareja.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	OnHand      decimal.Decimal // cantidad física en bodega
	Reserved    decimal.Decimal // cantidad reservada, no disponible para salidas
	UpdatedAt   time.Time
}

// Available devuelve la cantidad disponible: en bodega menos reservada.
// El modelo no recorta valores negativos; las salidas se validan antes de mutar.
func (r *InventoryRecord) Available() decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	return r.OnHand.Sub(r.Reserved)
}
