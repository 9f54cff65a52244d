package auth

import "github.com/tu-usuario/warehouse-console/internal/domain/entity"

// Identity es la identidad autenticada que viaja con cada petición
// (reconstruida desde los claims del token, sin consultar el repositorio).
type Identity struct {
	UserID     string
	Name       string
	Role       string
	Warehouses []string
}

// IsAuthenticated indica si hay una identidad presente.
func (id *Identity) IsAuthenticated() bool {
	return id != nil && id.UserID != ""
}

// HasRole indica si la identidad tiene al menos el rol requerido.
// Roles desconocidos cuentan como cero privilegios.
func (id *Identity) HasRole(required string) bool {
	if !id.IsAuthenticated() {
		return false
	}
	return entity.RoleAtLeast(id.Role, required)
}

// HasWarehouseAccess indica si la identidad puede operar la bodega.
// Un admin tiene acceso implícito a todas.
func (id *Identity) HasWarehouseAccess(warehouseID string) bool {
	if !id.IsAuthenticated() {
		return false
	}
	if id.Role == entity.RoleAdmin {
		return true
	}
	for _, w := range id.Warehouses {
		if w == warehouseID {
			return true
		}
	}
	return false
}
