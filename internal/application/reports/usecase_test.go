package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/memory"
)

// newReportsFixture levanta el caso de uso sobre el dataset demo, más un
// registro extra en warehouse_2 para poder distinguir el alcance del
// consolidado por identidad.
func newReportsFixture(t *testing.T) *reports.ReportsUseCase {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))

	invRepo := memory.NewInventoryRepository(store)
	require.NoError(t, invRepo.Upsert(context.Background(), &entity.InventoryRecord{
		ProductID:   "trina_620w",
		WarehouseID: "warehouse_2",
		OnHand:      decimal.NewFromInt(40),
		Reserved:    decimal.NewFromInt(5),
	}))

	return reports.NewReportsUseCase(
		memory.NewWarehouseRepository(store),
		memory.NewProductRepository(store),
		invRepo,
		memory.NewMovementRepository(store),
		nil,
	)
}

func managerIdentity() *auth.Identity {
	return &auth.Identity{
		UserID: "manager_1", Name: "Менеджер склада",
		Role: entity.RoleManager, Warehouses: []string{"warehouse_1"},
	}
}

func adminIdentity() *auth.Identity {
	return &auth.Identity{UserID: "admin_1", Role: entity.RoleAdmin}
}

// El consolidado (warehouseID vacío) abarca solo las bodegas de la identidad;
// un admin las abarca todas sin lista explícita.
func TestBuildStockReport_ConsolidadoAcotadoPorAcceso(t *testing.T) {
	uc := newReportsFixture(t)
	ctx := context.Background()

	byManager, err := uc.BuildStockReport(ctx, managerIdentity(), "")
	require.NoError(t, err)
	require.NotEmpty(t, byManager.Rows)
	for _, row := range byManager.Rows {
		assert.Equal(t, "Склад Белая Церковь", row.WarehouseName,
			"el manager solo tiene acceso a warehouse_1")
	}

	byAdmin, err := uc.BuildStockReport(ctx, adminIdentity(), "")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, row := range byAdmin.Rows {
		names[row.WarehouseName] = true
	}
	assert.True(t, names["Склад Белая Церковь"])
	assert.True(t, names["Склад Киев"], "el admin consolida todas las bodegas")
}

// Una bodega explícita fuera del alcance de la identidad es ErrForbidden, no
// un reporte vacío.
func TestBuildStockReport_BodegaExplicitaInaccesible(t *testing.T) {
	uc := newReportsFixture(t)
	ctx := context.Background()

	_, err := uc.BuildStockReport(ctx, managerIdentity(), "warehouse_2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	byAdmin, err := uc.BuildStockReport(ctx, adminIdentity(), "warehouse_2")
	require.NoError(t, err)
	require.Len(t, byAdmin.Rows, 1)
	assert.Equal(t, "Склад Киев", byAdmin.Rows[0].WarehouseName)
}

// El reporte de movimientos aplica el mismo control de acceso por bodega.
func TestBuildMovementReport_AccesoPorBodega(t *testing.T) {
	uc := newReportsFixture(t)
	ctx := context.Background()
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	_, err := uc.BuildMovementReport(ctx, managerIdentity(), "warehouse_2", from, to)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	report, err := uc.BuildMovementReport(ctx, managerIdentity(), "warehouse_1", from, to)
	require.NoError(t, err)
	assert.Equal(t, "Склад Белая Церковь", report.WarehouseName)
}
