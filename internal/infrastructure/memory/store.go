// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria. Es el modo demo por defecto: mismo contrato que los adaptadores de
// Postgres, sin base de datos.
package memory

import (
	"sync"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// Store es el dueño único de las colecciones en memoria. Todos los
// repositorios del paquete comparten el mismo Store y su RWMutex.
type Store struct {
	mu sync.RWMutex
	// txMu serializa las operaciones de stock completas (leer-validar-mutar),
	// el equivalente en memoria del SELECT FOR UPDATE.
	txMu sync.Mutex

	warehouses []*entity.Warehouse
	categories []*entity.Category
	products   []*entity.Product
	records    map[string]*entity.InventoryRecord // clave: productID + "|" + warehouseID
	movements  []*entity.MovementRecord
	users      []*entity.User
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{records: make(map[string]*entity.InventoryRecord)}
}

func recordKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}
