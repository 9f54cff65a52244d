package console

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/usecase"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// WarehousesView view model del selector de bodegas.
type WarehousesView struct {
	Warehouses []dto.WarehouseResponse `json:"warehouses"`
	CanAdd     bool                    `json:"can_add"`
}

// WarehousesModule módulo del selector de bodegas. Se construye al arrancar
// la consola (no es perezoso como inventario y movimientos).
type WarehousesModule struct {
	warehouseUC *usecase.WarehouseUseCase
}

// NewWarehousesModule construye el módulo.
func NewWarehousesModule(warehouseUC *usecase.WarehouseUseCase) *WarehousesModule {
	return &WarehousesModule{warehouseUC: warehouseUC}
}

// Render lista las bodegas. El alta de bodegas se ofrece a manager+.
func (m *WarehousesModule) Render(ctx context.Context, sess *Session, _ Params) (interface{}, error) {
	list, err := m.warehouseUC.List(ctx)
	if err != nil {
		return nil, err
	}
	return &WarehousesView{
		Warehouses: list.Items,
		CanAdd:     sess.Identity.HasRole(entity.RoleManager),
	}, nil
}
