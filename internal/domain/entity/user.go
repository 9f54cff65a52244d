package entity

import "time"

// Roles válidos para User, ordenados por privilegio (admin ⊇ manager ⊇ warehouse_keeper).
const (
	RoleAdmin           = "admin"
	RoleManager         = "manager"
	RoleWarehouseKeeper = "warehouse_keeper"
)

// roleLevels define el orden total de privilegios. Un rol desconocido vale 0 (sin privilegios).
var roleLevels = map[string]int{
	RoleAdmin:           3,
	RoleManager:         2,
	RoleWarehouseKeeper: 1,
}

// RoleLevel devuelve el nivel de privilegio de un rol. Roles desconocidos devuelven 0.
func RoleLevel(role string) int {
	return roleLevels[role]
}

// RoleAtLeast indica si role tiene al menos el privilegio de required.
func RoleAtLeast(role, required string) bool {
	return RoleLevel(role) >= RoleLevel(required)
}

// User representa un usuario del sistema con su rol y bodegas accesibles.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, warehouse_keeper
	Warehouses   []string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene al menos el rol requerido.
func (u *User) HasRole(required string) bool {
	if u == nil {
		return false
	}
	return RoleAtLeast(u.Role, required)
}

// HasWarehouseAccess indica si el usuario puede operar la bodega. Un admin
// tiene acceso implícito a todas.
func (u *User) HasWarehouseAccess(warehouseID string) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	for _, id := range u.Warehouses {
		if id == warehouseID {
			return true
		}
	}
	return false
}
