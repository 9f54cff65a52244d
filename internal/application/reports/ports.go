package reports

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
)

// Formatos de exportación soportados.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
	FormatPDF = "pdf"
)

// StockReportExporter serializa el reporte de remanentes en un formato concreto.
type StockReportExporter interface {
	ExportStockReport(ctx context.Context, report *dto.StockReport) ([]byte, error)
}

// MovementReportExporter serializa el reporte de movimientos en un formato concreto.
type MovementReportExporter interface {
	ExportMovementReport(ctx context.Context, report *dto.MovementReport) ([]byte, error)
}

// Exporter exportador completo para un formato (CSV, XML o PDF).
type Exporter interface {
	StockReportExporter
	MovementReportExporter
	// ContentType tipo MIME del formato producido.
	ContentType() string
}
