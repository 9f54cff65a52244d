// Package pdf implementa la exportación de reportes a PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌────────────────────────────────────────────────┐
//	│  TÍTULO + fecha de generación                   │
//	│  ─────────────────────────────────────────────  │
//	│  TABLA: una fila por producto / movimiento      │
//	│  ─────────────────────────────────────────────  │
//	│  PIE: total de filas                            │
//	└────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 200, Green: 30, Blue: 30}
)

var _ reports.Exporter = (*ReportGenerator)(nil)

// ReportGenerator genera reportes de remanentes y movimientos en PDF.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// ContentType tipo MIME del PDF.
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// ExportStockReport genera el PDF de remanentes y devuelve sus bytes.
func (g *ReportGenerator) ExportStockReport(_ context.Context, report *dto.StockReport) ([]byte, error) {
	m := newDocument("Reporte de remanentes")

	m.AddRows(titleRow("Reporte de remanentes",
		"Generado: "+report.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(
		cell{"Bodega", 3, align.Left},
		cell{"Producto", 4, align.Left},
		cell{"SKU", 2, align.Left},
		cell{"En bodega", 1, align.Right},
		cell{"Reserv.", 1, align.Right},
		cell{"Disp.", 1, align.Right},
	))
	for _, r := range report.Rows {
		valueColor := colorGray
		if r.IsCritical {
			valueColor = colorAlert
		}
		m.AddRows(row.New(6).Add(
			bodyCol(r.WarehouseName, 3, align.Left, colorGray),
			bodyCol(r.ProductName, 4, align.Left, colorGray),
			bodyCol(r.SKU, 2, align.Left, colorGray),
			bodyCol(r.OnHand.String(), 1, align.Right, colorGray),
			bodyCol(r.Reserved.String(), 1, align.Right, colorGray),
			bodyCol(r.Available.String(), 1, align.Right, valueColor),
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Total de posiciones: %d", len(report.Rows))))
	return generate(m)
}

// ExportMovementReport genera el PDF de movimientos del período.
func (g *ReportGenerator) ExportMovementReport(_ context.Context, report *dto.MovementReport) ([]byte, error) {
	m := newDocument("Reporte de movimientos")

	subtitle := fmt.Sprintf("%s · %s — %s",
		report.WarehouseName,
		report.From.Format("02/01/2006"),
		report.To.Format("02/01/2006"))
	m.AddRows(titleRow("Reporte de movimientos", subtitle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(
		cell{"Fecha", 2, align.Left},
		cell{"Producto", 4, align.Left},
		cell{"Tipo", 1, align.Center},
		cell{"Cant.", 1, align.Right},
		cell{"Destinatario", 3, align.Left},
		cell{"Reman.", 1, align.Right},
	))
	for _, r := range report.Rows {
		m.AddRows(row.New(6).Add(
			bodyCol(r.Date.Format("02/01 15:04"), 2, align.Left, colorGray),
			bodyCol(r.ProductName, 4, align.Left, colorGray),
			bodyCol(r.Type, 1, align.Center, colorGray),
			bodyCol(r.Quantity.String(), 1, align.Right, colorGray),
			bodyCol(r.Recipient, 3, align.Left, colorGray),
			bodyCol(r.Remaining.String(), 1, align.Right, colorGray),
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Total de movimientos: %d", len(report.Rows))))
	return generate(m)
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title, subtitle string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
	)
}

type cell struct {
	label string
	size  int
	align align.Type
}

func headerRow(cells ...cell) core.Row {
	r := row.New(7)
	for _, c := range cells {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 1,
		})))
	}
	return r
}

func bodyCol(value string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Color: color,
	}))
}

func footerRow(label string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(label, props.Text{
			Size: 8, Top: 4, Color: colorGray,
		})),
	)
}
