package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // поступление / entrada
	MovementTypeOut = "out" // списание / salida
)

// MovementRecord es el registro inmutable de una operación de stock.
// Solo se agrega al log; nunca se muta ni se borra.
type MovementRecord struct {
	ID             string
	WarehouseID    string
	ProductID      string
	Type           string // in, out
	Quantity       decimal.Decimal
	UserID         string
	Recipient      string // obligatorio en salidas
	Destination    string
	Comment        string
	RemainingStock decimal.Decimal // disponible resultante tras la operación
	CreatedAt      time.Time
}
