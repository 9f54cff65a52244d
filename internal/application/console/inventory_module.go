package console

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
)

// InventoryView view model del dashboard de inventario, con el estado de
// consulta vigente para que el cliente lo refleje.
type InventoryView struct {
	Dashboard *dto.InventoryDashboardDTO `json:"dashboard"`
	Query     dto.ProductQueryRequest    `json:"query"`
}

// InventoryModule módulo de inventario. Es dueño de su estado de consulta
// (categoría, búsqueda, orden); los parámetros de activación lo actualizan y
// el estado persiste entre activaciones mientras viva el controlador.
type InventoryModule struct {
	catalogUC *catalog.CatalogUseCase
	query     catalog.Query
}

// NewInventoryModule construye el módulo con orden por nombre ascendente.
func NewInventoryModule(catalogUC *catalog.CatalogUseCase) *InventoryModule {
	return &InventoryModule{
		catalogUC: catalogUC,
		query:     catalog.Query{SortBy: catalog.SortByName, SortOrder: catalog.SortAsc},
	}
}

// Render aplica los parámetros al estado de consulta y deriva el dashboard.
// Mismo estado y mismos datos producen el mismo resultado: el pipeline se
// recalcula en cada llamada, nunca se cachea.
func (m *InventoryModule) Render(ctx context.Context, sess *Session, params Params) (interface{}, error) {
	m.applyParams(params)

	dashboard, err := m.catalogUC.Dashboard(ctx, sess.Warehouse, m.query)
	if err != nil {
		return nil, err
	}
	return &InventoryView{
		Dashboard: dashboard,
		Query: dto.ProductQueryRequest{
			Category:  m.query.CategoryID,
			Search:    m.query.Search,
			SortBy:    m.query.SortBy,
			SortOrder: m.query.SortOrder,
		},
	}, nil
}

func (m *InventoryModule) applyParams(params Params) {
	if params == nil {
		return
	}
	if v, ok := params["category"]; ok {
		m.query.CategoryID = v
	}
	if v, ok := params["search"]; ok {
		m.query.Search = v
	}
	if v, ok := params["sort_by"]; ok && v != "" {
		m.query.SortBy = v
	}
	if v, ok := params["sort_order"]; ok && v != "" {
		m.query.SortOrder = v
	}
}
