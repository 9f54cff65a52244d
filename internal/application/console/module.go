package console

import "context"

// Nombres de vista enrutables de la consola.
const (
	ViewWarehouses = "warehouses"
	ViewInventory  = "inventory"
	ViewMovements  = "movements"
	ViewReports    = "reports"
	ViewUsers      = "users"
)

// viewTitles título legible por vista, para breadcrumbs y mensajes.
var viewTitles = map[string]string{
	ViewWarehouses: "Bodegas",
	ViewInventory:  "Productos",
	ViewMovements:  "Movimientos",
	ViewReports:    "Informes",
	ViewUsers:      "Usuarios",
}

// ViewTitle devuelve el título de una vista, o un genérico para desconocidas.
func ViewTitle(name string) string {
	if t, ok := viewTitles[name]; ok {
		return t
	}
	return "Sección desconocida"
}

// Params parámetros de activación de una vista (estado de consulta, filtros).
type Params map[string]string

// Get devuelve el parámetro o vacío.
func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// ViewModule es un módulo de funcionalidad de la consola: produce el view
// model de su vista a partir de la sesión y los parámetros. Cada módulo es
// dueño de su propio estado de consulta y de sus colecciones.
type ViewModule interface {
	// Render deriva el view model actual. Los fallos se devuelven como error y
	// el controlador los convierte en la vista de error.
	Render(ctx context.Context, sess *Session, params Params) (interface{}, error)
}

// ModuleFactory construye un módulo bajo demanda (carga perezosa).
type ModuleFactory func() ViewModule
