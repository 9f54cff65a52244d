package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ValidationErrors agrupa errores de validación por campo. Son recuperables:
// se muestran junto al campo y nunca como error global.
type ValidationErrors map[string]string

// Error implementa error. El detalle por campo viaja en el mapa.
func (v ValidationErrors) Error() string {
	return "validación fallida"
}

// AsValidationErrors extrae un ValidationErrors de err, si lo es.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
