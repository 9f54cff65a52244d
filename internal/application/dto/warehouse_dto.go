package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Location    string `json:"location" validate:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// WarehouseStatsDTO contadores informativos del selector de bodegas.
type WarehouseStatsDTO struct {
	TotalProducts  int       `json:"total_products"`
	MovementsToday int       `json:"movements_today"`
	CriticalStock  int       `json:"critical_stock"`
	LastActivity   time.Time `json:"last_activity"`
}

// WarehouseResponse representación pública de una bodega.
type WarehouseResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Location    string            `json:"location"`
	Address     string            `json:"address"`
	Description string            `json:"description"`
	Active      bool              `json:"active"`
	Capacity    int               `json:"capacity"`
	Stats       WarehouseStatsDTO `json:"stats"`
	CreatedAt   time.Time         `json:"created_at"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
