package entity

// Category representa una categoría de productos. Datos de referencia estáticos.
type Category struct {
	ID          string
	Name        string
	Icon        string
	Color       string
	Description string
	SortOrder   int
}
