package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Claves de ordenamiento del listado de productos.
const (
	SortByName     = "name"
	SortByBrand    = "brand"
	SortByQuantity = "quantity"
	SortByCritical = "critical"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query estado de consulta del listado: filtro de categoría, búsqueda libre y orden.
type Query struct {
	CategoryID string
	Search     string
	SortBy     string
	SortOrder  string
}

// StockLookup resuelve el registro de inventario de un producto en la bodega
// actual. Devuelve nil si el producto no tiene registro.
type StockLookup func(productID string) *entity.InventoryRecord

// newCollator comparación de cadenas sensible al locale. collate.Collator no
// es seguro para uso concurrente, así que se crea uno por invocación.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// FilterProducts deriva el listado mostrado a partir del catálogo completo y el
// estado de consulta. Puro: no muta entradas, se recalcula en cada llamada y es
// determinista para entradas iguales.
//
// Orden de aplicación: categoría → búsqueda → ordenamiento. Los dos filtros son
// predicados independientes, así que su orden es conmutativo.
func FilterProducts(products []*entity.Product, stock StockLookup, q Query) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))

	for _, p := range products {
		if q.CategoryID != "" && p.CategoryID != q.CategoryID {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, stock, q)
	return out
}

// matchesSearch búsqueda en dos niveles: subcadena sobre nombre, marca, modelo
// o SKU en minúsculas; si falla, coincidencia "difusa" por iniciales de palabra
// sobre "nombre marca modelo". No es distancia de edición: es un acrónimo.
func matchesSearch(p *entity.Product, search string) bool {
	query := strings.ToLower(search)

	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Model), query) ||
		strings.Contains(strings.ToLower(p.SKU), query) {
		return true
	}

	return fuzzyMatch(query, p.Name+" "+p.Brand+" "+p.Model)
}

// fuzzyMatch concatena la primera letra de cada palabra del texto y busca la
// consulta como subcadena de ese acrónimo.
func fuzzyMatch(query, text string) bool {
	textLower := strings.ToLower(text)
	if strings.Contains(textLower, query) {
		return true
	}

	var b strings.Builder
	for _, word := range strings.Fields(textLower) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return strings.Contains(b.String(), query)
}

// sortProducts ordena in place por la clave seleccionada. El orden descendente
// intercambia los operandos antes de comparar, no niega el resultado: con
// comparación de cadenas sensible al locale ambas cosas no siempre equivalen.
// El sort es estable: claves iguales conservan su orden relativo previo.
func sortProducts(products []*entity.Product, stock StockLookup, q Query) {
	col := newCollator()
	desc := q.SortOrder == SortDesc

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if desc {
			a, b = b, a
		}

		switch q.SortBy {
		case SortByBrand:
			return col.CompareString(strings.ToLower(a.Brand), strings.ToLower(b.Brand)) < 0
		case SortByQuantity:
			return onHand(stock, a.ID).LessThan(onHand(stock, b.ID))
		case SortByCritical:
			return criticalRank(stock, a).LessThan(criticalRank(stock, b))
		default: // SortByName
			return col.CompareString(strings.ToLower(a.Name), strings.ToLower(b.Name)) < 0
		}
	})
}

func onHand(stock StockLookup, productID string) decimal.Decimal {
	if rec := stock(productID); rec != nil {
		return rec.OnHand
	}
	return decimal.Zero
}

// criticalRank proyecta el estado crítico a {0,1} para ordenarlo como número.
func criticalRank(stock StockLookup, p *entity.Product) decimal.Decimal {
	available := decimal.Zero
	if rec := stock(p.ID); rec != nil {
		available = rec.Available()
	}
	if p.IsCritical(available) {
		return decimal.NewFromInt(1)
	}
	return decimal.Zero
}
