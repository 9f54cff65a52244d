package console

import (
	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/application/movements"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
	"github.com/tu-usuario/warehouse-console/internal/application/usecase"
)

// ModuleDeps dependencias compartidas para construir los módulos de la consola.
type ModuleDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	CatalogUC   *catalog.CatalogUseCase
	MovementsUC *movements.MovementsUseCase
	ReportsUC   *reports.ReportsUseCase
	AuthUC      *auth.AuthUseCase
}

// DefaultFactories registro de fábricas resuelto al arranque: el mapeo fijo
// {warehouses, inventory, movements, reports, users} → módulo. Sustituye la
// carga dinámica condicional por un registro explícito.
func DefaultFactories(deps ModuleDeps) map[string]ModuleFactory {
	return map[string]ModuleFactory{
		ViewWarehouses: func() ViewModule { return NewWarehousesModule(deps.WarehouseUC) },
		ViewInventory:  func() ViewModule { return NewInventoryModule(deps.CatalogUC) },
		ViewMovements:  func() ViewModule { return NewMovementsModule(deps.MovementsUC) },
		ViewReports:    func() ViewModule { return NewReportsModule(deps.ReportsUC) },
		ViewUsers:      func() ViewModule { return NewUsersModule(deps.AuthUC) },
	}
}
