// Package export implementa los exportadores de reportes a CSV y XML.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
)

var _ reports.Exporter = (*CSVExporter)(nil)

// CSVExporter serializa reportes a CSV (separador coma, UTF-8).
type CSVExporter struct{}

// NewCSVExporter construye el exportador CSV.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ContentType tipo MIME del CSV.
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// ExportStockReport escribe una fila por (bodega, producto) más la cabecera.
func (e *CSVExporter) ExportStockReport(_ context.Context, report *dto.StockReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"bodega", "producto", "sku", "unidad", "en_bodega", "reservado", "disponible", "critico"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv stock header: %w", err)
	}
	for _, r := range report.Rows {
		rec := []string{
			r.WarehouseName, r.ProductName, r.SKU, r.Unit,
			r.OnHand.String(), r.Reserved.String(), r.Available.String(),
			boolMark(r.IsCritical),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv stock row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv stock flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportMovementReport escribe una fila por movimiento del período.
func (e *CSVExporter) ExportMovementReport(_ context.Context, report *dto.MovementReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"fecha", "producto", "sku", "tipo", "cantidad", "destinatario", "remanente"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv movements header: %w", err)
	}
	for _, r := range report.Rows {
		rec := []string{
			r.Date.Format("2006-01-02 15:04"),
			r.ProductName, r.SKU, r.Type,
			r.Quantity.String(), r.Recipient, r.Remaining.String(),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv movements row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv movements flush: %w", err)
	}
	return buf.Bytes(), nil
}

func boolMark(b bool) string {
	if b {
		return "si"
	}
	return "no"
}
