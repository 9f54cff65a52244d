package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReportRow una fila del reporte de remanentes por bodega.
type StockReportRow struct {
	WarehouseName string          `json:"warehouse_name"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"`
	OnHand        decimal.Decimal `json:"on_hand"`
	Reserved      decimal.Decimal `json:"reserved"`
	Available     decimal.Decimal `json:"available"`
	IsCritical    bool            `json:"is_critical"`
}

// StockReport reporte de remanentes por bodega.
type StockReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Rows        []StockReportRow `json:"rows"`
}

// MovementReportRow una fila del reporte de movimientos por período.
type MovementReportRow struct {
	Date        time.Time       `json:"date"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Recipient   string          `json:"recipient,omitempty"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// MovementReport reporte de movimientos de una bodega en un período.
type MovementReport struct {
	WarehouseName string              `json:"warehouse_name"`
	From          time.Time           `json:"from"`
	To            time.Time           `json:"to"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Rows          []MovementReportRow `json:"rows"`
}
