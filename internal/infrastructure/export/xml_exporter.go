package export

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
)

var _ reports.Exporter = (*XMLExporter)(nil)

// XMLExporter serializa reportes a XML con declaración e indentación de dos espacios.
type XMLExporter struct{}

// NewXMLExporter construye el exportador XML.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ContentType tipo MIME del XML.
func (e *XMLExporter) ContentType() string { return "application/xml; charset=utf-8" }

// ExportStockReport construye el documento:
//
//	<StockReport generated_at="...">
//	  <Row warehouse="..." product="..." sku="...">
//	    <OnHand>150</OnHand> <Reserved>20</Reserved> <Available>130</Available>
//	  </Row>
//	</StockReport>
func (e *XMLExporter) ExportStockReport(_ context.Context, report *dto.StockReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockReport")
	root.CreateAttr("generated_at", report.GeneratedAt.Format(time.RFC3339))

	for _, r := range report.Rows {
		row := root.CreateElement("Row")
		row.CreateAttr("warehouse", r.WarehouseName)
		row.CreateAttr("product", r.ProductName)
		row.CreateAttr("sku", r.SKU)
		row.CreateAttr("unit", r.Unit)
		row.CreateElement("OnHand").SetText(r.OnHand.String())
		row.CreateElement("Reserved").SetText(r.Reserved.String())
		row.CreateElement("Available").SetText(r.Available.String())
		if r.IsCritical {
			row.CreateElement("Critical").SetText("true")
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml stock report: %w", err)
	}
	return out, nil
}

// ExportMovementReport construye el documento de movimientos del período.
func (e *XMLExporter) ExportMovementReport(_ context.Context, report *dto.MovementReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("MovementReport")
	root.CreateAttr("warehouse", report.WarehouseName)
	root.CreateAttr("from", report.From.Format(time.RFC3339))
	root.CreateAttr("to", report.To.Format(time.RFC3339))
	root.CreateAttr("generated_at", report.GeneratedAt.Format(time.RFC3339))

	for _, r := range report.Rows {
		row := root.CreateElement("Movement")
		row.CreateAttr("date", r.Date.Format(time.RFC3339))
		row.CreateAttr("type", r.Type)
		row.CreateElement("Product").SetText(r.ProductName)
		row.CreateElement("SKU").SetText(r.SKU)
		row.CreateElement("Quantity").SetText(r.Quantity.String())
		if r.Recipient != "" {
			row.CreateElement("Recipient").SetText(r.Recipient)
		}
		row.CreateElement("Remaining").SetText(r.Remaining.String())
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml movement report: %w", err)
	}
	return out, nil
}
