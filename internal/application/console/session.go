package console

import (
	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// Session es el estado de consola de un usuario autenticado: su identidad y la
// bodega seleccionada. Se inyecta explícitamente en cada módulo en lugar de un
// estado global mutable.
type Session struct {
	Identity  *auth.Identity
	Warehouse *entity.Warehouse
}

// HasWarehouse indica si hay una bodega seleccionada. Toda vista salvo el
// selector de bodegas la requiere.
func (s *Session) HasWarehouse() bool {
	return s != nil && s.Warehouse != nil
}
