package console

import (
	"context"
	"sort"

	"github.com/tu-usuario/warehouse-console/internal/application/reports"
)

// ReportCard una tarjeta de reporte disponible.
type ReportCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReportsView view model de la vista de informes.
type ReportsView struct {
	Reports []ReportCard `json:"reports"`
	Formats []string     `json:"formats"`
}

// ReportsModule módulo de informes y analítica.
type ReportsModule struct {
	reportsUC *reports.ReportsUseCase
}

// NewReportsModule construye el módulo.
func NewReportsModule(reportsUC *reports.ReportsUseCase) *ReportsModule {
	return &ReportsModule{reportsUC: reportsUC}
}

// Render lista los reportes disponibles y sus formatos de exportación.
func (m *ReportsModule) Render(_ context.Context, _ *Session, _ Params) (interface{}, error) {
	formats := m.reportsUC.Formats()
	sort.Strings(formats)
	return &ReportsView{
		Reports: []ReportCard{
			{ID: "stock", Title: "Remanentes por bodega", Description: "existencias actuales de todos los productos por bodega"},
			{ID: "movements", Title: "Movimientos por período", Description: "detalle de todas las operaciones por fecha"},
		},
		Formats: formats,
	}, nil
}
