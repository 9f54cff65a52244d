package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "trina_620w", CategoryID: "solar_panels", Name: "Trina 620Вт", Brand: "Trina Solar", Model: "TSM-620W", SKU: "TS-620-MONO", CriticalStock: decimal.NewFromInt(50)},
		{ID: "jinko_615w", CategoryID: "solar_panels", Name: "Jinko 615Вт", Brand: "Jinko Solar", Model: "JKM-615W", SKU: "JK-615-TIGER", CriticalStock: decimal.NewFromInt(50)},
		{ID: "huawei_10ktl", CategoryID: "inverters", Name: "Huawei Sun2000-10KTL", Brand: "Huawei", Model: "SUN2000-10KTL-M1", SKU: "HW-10K-M1", CriticalStock: decimal.NewFromInt(10)},
		{ID: "solis_8k", CategoryID: "inverters", Name: "Solis 8K-5G", Brand: "Solis", Model: "8K-5G", SKU: "SOL-8K-5G", CriticalStock: decimal.NewFromInt(10)},
	}
}

// stockOf construye un StockLookup fijo: productID → (en bodega, reservado).
func stockOf(onHand map[string]int64) catalog.StockLookup {
	return func(productID string) *entity.InventoryRecord {
		qty, ok := onHand[productID]
		if !ok {
			return nil
		}
		return &entity.InventoryRecord{
			ProductID: productID,
			OnHand:    decimal.NewFromInt(qty),
		}
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var noStock = stockOf(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// La subcadena sobre nombre/marca/modelo/SKU es el primer nivel de búsqueda:
// "Trina" debe traer solo la panel Trina, no todo su categoría.
func TestFilterProducts_BusquedaSubcadena(t *testing.T) {
	got := catalog.FilterProducts(testProducts(), noStock, catalog.Query{Search: "Trina"})
	require.Len(t, got, 1)
	assert.Equal(t, "trina_620w", got[0].ID)
}

// La búsqueda no distingue mayúsculas y también alcanza el SKU.
func TestFilterProducts_BusquedaPorSKU(t *testing.T) {
	got := catalog.FilterProducts(testProducts(), noStock, catalog.Query{Search: "jk-615"})
	require.Len(t, got, 1)
	assert.Equal(t, "jinko_615w", got[0].ID)
}

// Segundo nivel: acrónimo de iniciales de palabra sobre "nombre marca modelo".
// "Huawei Sun2000-10KTL Huawei SUN2000-10KTL-M1" → acrónimo "hshs...": la
// consulta "hsh" coincide sin ser subcadena de ningún campo.
func TestFilterProducts_BusquedaDifusaPorAcronimo(t *testing.T) {
	got := catalog.FilterProducts(testProducts(), noStock, catalog.Query{Search: "hsh"})
	require.Len(t, got, 1)
	assert.Equal(t, "huawei_10ktl", got[0].ID)
}

// Sin coincidencia en ninguno de los dos niveles el resultado es vacío, no un
// error.
func TestFilterProducts_SinCoincidencias(t *testing.T) {
	got := catalog.FilterProducts(testProducts(), noStock, catalog.Query{Search: "zzzz"})
	assert.Empty(t, got)
}

// Categoría y búsqueda son predicados independientes: se intersectan.
func TestFilterProducts_CategoriaMasBusqueda(t *testing.T) {
	got := catalog.FilterProducts(testProducts(), noStock, catalog.Query{
		CategoryID: "inverters",
		Search:     "Solis",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "solis_8k", got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenamiento
// ──────────────────────────────────────────────────────────────────────────────

// Orden por cantidad ascendente y descendente sobre el mismo stock.
func TestFilterProducts_OrdenPorCantidad(t *testing.T) {
	stock := stockOf(map[string]int64{
		"trina_620w":   150,
		"jinko_615w":   85,
		"huawei_10ktl": 25,
		"solis_8k":     18,
	})

	asc := catalog.FilterProducts(testProducts(), stock, catalog.Query{
		SortBy: catalog.SortByQuantity, SortOrder: catalog.SortAsc,
	})
	assert.Equal(t, []string{"solis_8k", "huawei_10ktl", "jinko_615w", "trina_620w"}, ids(asc))

	desc := catalog.FilterProducts(testProducts(), stock, catalog.Query{
		SortBy: catalog.SortByQuantity, SortOrder: catalog.SortDesc,
	})
	assert.Equal(t, []string{"trina_620w", "jinko_615w", "huawei_10ktl", "solis_8k"}, ids(desc))
}

// El orden es estable: productos con la misma clave conservan su orden
// relativo de entrada, en ascendente y en descendente.
func TestFilterProducts_OrdenEstableConEmpates(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Name: "Panel", Brand: "X"},
		{ID: "b", Name: "Panel", Brand: "Y"},
		{ID: "c", Name: "Panel", Brand: "Z"},
	}

	asc := catalog.FilterProducts(products, noStock, catalog.Query{
		SortBy: catalog.SortByName, SortOrder: catalog.SortAsc,
	})
	assert.Equal(t, []string{"a", "b", "c"}, ids(asc))

	desc := catalog.FilterProducts(products, noStock, catalog.Query{
		SortBy: catalog.SortByName, SortOrder: catalog.SortDesc,
	})
	assert.Equal(t, []string{"a", "b", "c"}, ids(desc),
		"claves iguales no deben reordenarse al invertir el orden")
}

// Orden por criticidad descendente: los críticos primero, y dentro de cada
// grupo se conserva el orden previo.
func TestFilterProducts_OrdenPorCritico(t *testing.T) {
	// solis_8k: disponible 5 ≤ umbral 10 → crítico; el resto holgado.
	stock := stockOf(map[string]int64{
		"trina_620w":   150,
		"jinko_615w":   85,
		"huawei_10ktl": 25,
		"solis_8k":     5,
	})

	desc := catalog.FilterProducts(testProducts(), stock, catalog.Query{
		SortBy: catalog.SortByCritical, SortOrder: catalog.SortDesc,
	})
	assert.Equal(t, "solis_8k", desc[0].ID, "el producto crítico va primero")
	assert.Equal(t, []string{"trina_620w", "jinko_615w", "huawei_10ktl"}, ids(desc[1:]),
		"los no críticos conservan su orden relativo")
}

// Un producto sin registro de stock ordena como cero.
func TestFilterProducts_SinRegistroOrdenaComoCero(t *testing.T) {
	stock := stockOf(map[string]int64{"trina_620w": 150})

	asc := catalog.FilterProducts(testProducts()[:2], stock, catalog.Query{
		SortBy: catalog.SortByQuantity, SortOrder: catalog.SortAsc,
	})
	assert.Equal(t, []string{"jinko_615w", "trina_620w"}, ids(asc))
}

// El pipeline es determinista y no muta la entrada: dos llamadas con las
// mismas entradas producen el mismo resultado.
func TestFilterProducts_Determinista(t *testing.T) {
	products := testProducts()
	q := catalog.Query{SortBy: catalog.SortByBrand, SortOrder: catalog.SortDesc}

	first := ids(catalog.FilterProducts(products, noStock, q))
	second := ids(catalog.FilterProducts(products, noStock, q))
	assert.Equal(t, first, second)

	// La entrada conserva su orden original.
	assert.Equal(t, []string{"trina_620w", "jinko_615w", "huawei_10ktl", "solis_8k"}, ids(products))
}
