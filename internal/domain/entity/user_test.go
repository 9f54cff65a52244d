package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// La jerarquía es un orden total: admin ⊇ manager ⊇ warehouse_keeper.
func TestRoleAtLeast_Jerarquia(t *testing.T) {
	assert.True(t, entity.RoleAtLeast(entity.RoleAdmin, entity.RoleManager))
	assert.True(t, entity.RoleAtLeast(entity.RoleAdmin, entity.RoleWarehouseKeeper))
	assert.True(t, entity.RoleAtLeast(entity.RoleManager, entity.RoleWarehouseKeeper))
	assert.True(t, entity.RoleAtLeast(entity.RoleManager, entity.RoleManager))

	assert.False(t, entity.RoleAtLeast(entity.RoleWarehouseKeeper, entity.RoleManager))
	assert.False(t, entity.RoleAtLeast(entity.RoleManager, entity.RoleAdmin))
}

// Un rol desconocido vale cero: nunca satisface un requisito, y cualquier rol
// conocido lo satisface a él.
func TestRoleAtLeast_RolDesconocido(t *testing.T) {
	assert.Equal(t, 0, entity.RoleLevel("superuser"))
	assert.False(t, entity.RoleAtLeast("superuser", entity.RoleWarehouseKeeper))
	assert.True(t, entity.RoleAtLeast(entity.RoleWarehouseKeeper, "superuser"))
}

// Un admin accede a cualquier bodega aunque su lista explícita esté vacía.
func TestHasWarehouseAccess_AdminImplicito(t *testing.T) {
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}
	assert.True(t, admin.HasWarehouseAccess("warehouse_1"))
	assert.True(t, admin.HasWarehouseAccess("warehouse_99"))
}

// Los demás roles solo acceden a las bodegas de su lista.
func TestHasWarehouseAccess_ListaExplicita(t *testing.T) {
	keeper := &entity.User{
		ID:         "u2",
		Role:       entity.RoleWarehouseKeeper,
		Warehouses: []string{"warehouse_1"},
	}
	assert.True(t, keeper.HasWarehouseAccess("warehouse_1"))
	assert.False(t, keeper.HasWarehouseAccess("warehouse_2"))
}
