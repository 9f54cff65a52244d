package export_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/export"
)

// ─── Fixtures ────────────────────────────────────────────────────────────────

func stockReportFixture() *dto.StockReport {
	return &dto.StockReport{
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Rows: []dto.StockReportRow{
			{
				WarehouseName: "Склад Белая Церковь", ProductName: "Trina 620Вт", SKU: "TSM-620W",
				Unit: "шт", OnHand: decimal.NewFromInt(150), Reserved: decimal.NewFromInt(20),
				Available: decimal.NewFromInt(130),
			},
			{
				WarehouseName: "Склад Белая Церковь", ProductName: "Solis 8K-5G", SKU: "SOLIS-8K-5G",
				Unit: "шт", OnHand: decimal.NewFromInt(18), Reserved: decimal.NewFromInt(2),
				Available: decimal.NewFromInt(16), IsCritical: true,
			},
		},
	}
}

func movementReportFixture() *dto.MovementReport {
	return &dto.MovementReport{
		WarehouseName: "Склад Белая Церковь",
		From:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:            time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		GeneratedAt:   time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		Rows: []dto.MovementReportRow{
			{
				Date: time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC), ProductName: "Trina 620Вт",
				SKU: "TSM-620W", Type: "out", Quantity: decimal.NewFromInt(10),
				Recipient: "Иванов И.И.", Remaining: decimal.NewFromInt(120),
			},
			{
				Date: time.Date(2026, 8, 16, 9, 15, 0, 0, time.UTC), ProductName: "Trina 620Вт",
				SKU: "TSM-620W", Type: "in", Quantity: decimal.NewFromInt(50),
				Remaining: decimal.NewFromInt(170),
			},
		},
	}
}

// ─── CSV ─────────────────────────────────────────────────────────────────────

// El CSV de remanentes trae cabecera fija y una fila por (bodega, producto);
// el flag crítico sale como si/no.
func TestCSVExporter_StockReport(t *testing.T) {
	exp := export.NewCSVExporter()
	out, err := exp.ExportStockReport(context.Background(), stockReportFixture())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabecera + 2 filas")

	assert.Equal(t, []string{"bodega", "producto", "sku", "unidad", "en_bodega", "reservado", "disponible", "critico"}, records[0])
	assert.Equal(t, []string{"Склад Белая Церковь", "Trina 620Вт", "TSM-620W", "шт", "150", "20", "130", "no"}, records[1])
	assert.Equal(t, "si", records[2][7], "la fila crítica se marca con si")
}

// El CSV de movimientos formatea la fecha como aaaa-mm-dd hh:mm y deja el
// destinatario vacío en las entradas.
func TestCSVExporter_MovementReport(t *testing.T) {
	exp := export.NewCSVExporter()
	out, err := exp.ExportMovementReport(context.Background(), movementReportFixture())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"fecha", "producto", "sku", "tipo", "cantidad", "destinatario", "remanente"}, records[0])
	assert.Equal(t, []string{"2026-08-15 14:30", "Trina 620Вт", "TSM-620W", "out", "10", "Иванов И.И.", "120"}, records[1])
	assert.Equal(t, "", records[2][5], "una entrada no lleva destinatario")
}

func TestCSVExporter_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", export.NewCSVExporter().ContentType())
}

// Un reporte sin filas produce solo la cabecera.
func TestCSVExporter_ReporteVacio(t *testing.T) {
	exp := export.NewCSVExporter()
	out, err := exp.ExportStockReport(context.Background(), &dto.StockReport{GeneratedAt: time.Now()})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// ─── XML ─────────────────────────────────────────────────────────────────────

// El XML de remanentes se re-parsea con etree y conserva estructura y valores;
// el elemento Critical solo aparece en filas críticas.
func TestXMLExporter_StockReport(t *testing.T) {
	exp := export.NewXMLExporter()
	out, err := exp.ExportStockReport(context.Background(), stockReportFixture())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("StockReport")
	require.NotNil(t, root)
	assert.Equal(t, "2026-08-30T12:00:00Z", root.SelectAttrValue("generated_at", ""))

	rows := root.SelectElements("Row")
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Trina 620Вт", first.SelectAttrValue("product", ""))
	assert.Equal(t, "150", first.SelectElement("OnHand").Text())
	assert.Equal(t, "130", first.SelectElement("Available").Text())
	assert.Nil(t, first.SelectElement("Critical"), "fila no crítica sin elemento Critical")

	second := rows[1]
	assert.NotNil(t, second.SelectElement("Critical"))
}

func TestXMLExporter_MovementReport(t *testing.T) {
	exp := export.NewXMLExporter()
	out, err := exp.ExportMovementReport(context.Background(), movementReportFixture())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("MovementReport")
	require.NotNil(t, root)
	assert.Equal(t, "Склад Белая Церковь", root.SelectAttrValue("warehouse", ""))

	movs := root.SelectElements("Movement")
	require.Len(t, movs, 2)

	out1 := movs[0]
	assert.Equal(t, "out", out1.SelectAttrValue("type", ""))
	assert.Equal(t, "Иванов И.И.", out1.SelectElement("Recipient").Text())
	assert.Equal(t, "120", out1.SelectElement("Remaining").Text())

	in1 := movs[1]
	assert.Nil(t, in1.SelectElement("Recipient"), "una entrada no lleva destinatario")
}

func TestXMLExporter_ContentType(t *testing.T) {
	assert.Equal(t, "application/xml; charset=utf-8", export.NewXMLExporter().ContentType())
}
