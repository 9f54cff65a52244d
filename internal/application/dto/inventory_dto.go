package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQueryRequest parámetros de filtrado/orden del listado de productos.
type ProductQueryRequest struct {
	Category  string `query:"category"`
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`    // name, brand, quantity, critical
	SortOrder string `query:"sort_order"` // asc, desc
}

// ProductCardDTO una tarjeta de producto con su stock en la bodega actual.
type ProductCardDTO struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Specifications string          `json:"specifications"`
	Unit           string          `json:"unit"`
	SKU            string          `json:"sku"`
	OnHand         decimal.Decimal `json:"on_hand"`
	Reserved       decimal.Decimal `json:"reserved"`
	Available      decimal.Decimal `json:"available"`
	CriticalStock  decimal.Decimal `json:"critical_stock"`
	IsCritical     bool            `json:"is_critical"`
}

// CategoryTabDTO pestaña de categoría con su número de productos.
type CategoryTabDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	SortOrder    int    `json:"sort_order"`
	ProductCount int    `json:"product_count"`
}

// InventoryDashboardDTO cabecera + pestañas + tarjetas del dashboard de inventario.
type InventoryDashboardDTO struct {
	WarehouseID   string           `json:"warehouse_id"`
	WarehouseName string           `json:"warehouse_name"`
	TotalProducts int              `json:"total_products"`
	CriticalCount int              `json:"critical_count"`
	TotalOnHand   string           `json:"total_on_hand"` // abreviado: 4.4K, 1.2M
	Categories    []CategoryTabDTO `json:"categories"`
	Products      []ProductCardDTO `json:"products"`
}

// RegisterOperationRequest entrada para una operación de stock sobre un producto.
type RegisterOperationRequest struct {
	Type        string          `json:"type" validate:"required,oneof=add subtract"`
	Quantity    decimal.Decimal `json:"quantity"`
	Recipient   string          `json:"recipient"`
	Destination string          `json:"destination"`
	Comment     string          `json:"comment"`
}

// OperationResultDTO resultado de una operación de stock.
type OperationResultDTO struct {
	MovementID string          `json:"movement_id"`
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	OnHand     decimal.Decimal `json:"on_hand"`
	Available  decimal.Decimal `json:"available"`
}

// MovementDTO una entrada del log de movimientos.
type MovementDTO struct {
	ID             string          `json:"id"`
	WarehouseID    string          `json:"warehouse_id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	UserID         string          `json:"user_id"`
	Recipient      string          `json:"recipient,omitempty"`
	Destination    string          `json:"destination,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	RemainingStock decimal.Decimal `json:"remaining_stock"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos recientes.
type MovementListResponse struct {
	Items []MovementDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}
