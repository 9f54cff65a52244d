package console

import (
	"context"
	"strconv"
	"time"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/movements"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// MovementsView view model de la vista de actividad reciente.
type MovementsView struct {
	WarehouseID   string                    `json:"warehouse_id"`
	WarehouseName string                    `json:"warehouse_name"`
	Movements     *dto.MovementListResponse `json:"movements"`
}

// MovementsModule módulo de movimientos. Se construye de forma perezosa en su
// primera activación.
type MovementsModule struct {
	movementsUC *movements.MovementsUseCase
}

// NewMovementsModule construye el módulo.
func NewMovementsModule(movementsUC *movements.MovementsUseCase) *MovementsModule {
	return &MovementsModule{movementsUC: movementsUC}
}

// Render lista la actividad de la bodega actual, más reciente primero.
// Parámetros: product_id, type (in|out), from, to (RFC 3339), limit, offset.
func (m *MovementsModule) Render(ctx context.Context, sess *Session, params Params) (interface{}, error) {
	filter := repository.MovementFilter{
		ProductID: params.Get("product_id"),
		Type:      params.Get("type"),
	}
	if v := params.Get("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = &t
		}
	}
	if v := params.Get("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = &t
		}
	}
	page := dto.PageRequest{}
	if v := params.Get("limit"); v != "" {
		page.Limit, _ = strconv.Atoi(v)
	}
	if v := params.Get("offset"); v != "" {
		page.Offset, _ = strconv.Atoi(v)
	}

	list, err := m.movementsUC.ListRecent(ctx, sess.Warehouse.ID, filter, page)
	if err != nil {
		return nil, err
	}
	return &MovementsView{
		WarehouseID:   sess.Warehouse.ID,
		WarehouseName: sess.Warehouse.Name,
		Movements:     list,
	}, nil
}
