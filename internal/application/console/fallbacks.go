package console

// Clases de vista de reserva.
const (
	FallbackNotFound     = "not_found"
	FallbackError        = "error"
	FallbackAccessDenied = "access_denied"
)

// FallbackView view model de las vistas de reserva (no encontrado, error,
// acceso denegado). ReturnView es la vista sugerida para volver.
type FallbackView struct {
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	ReturnView string `json:"return_view"`
}

func notFoundView() *FallbackView {
	return &FallbackView{
		Kind:       FallbackNotFound,
		Title:      "Página no encontrada",
		Message:    "la sección solicitada no existe o no está disponible",
		ReturnView: ViewWarehouses,
	}
}

func errorView(message string) *FallbackView {
	return &FallbackView{
		Kind:       FallbackError,
		Title:      "Ocurrió un error",
		Message:    message,
		ReturnView: ViewWarehouses,
	}
}

func accessDeniedView() *FallbackView {
	return &FallbackView{
		Kind:       FallbackAccessDenied,
		Title:      "Acceso denegado",
		Message:    "no tiene permisos para ver esta sección",
		ReturnView: ViewWarehouses,
	}
}
