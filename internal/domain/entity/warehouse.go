package entity

import "time"

// WarehouseStats estadísticas agregadas de una bodega. Son solo contadores
// informativos para el selector de bodegas; no son autoritativos.
type WarehouseStats struct {
	TotalProducts  int
	MovementsToday int
	CriticalStock  int
	LastActivity   time.Time
}

// Warehouse representa una bodega donde se almacena inventario.
// Las bodegas se crean activas y nunca se eliminan.
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	Address     string
	Description string
	Active      bool
	Capacity    int
	ManagerID   string
	Stats       WarehouseStats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
