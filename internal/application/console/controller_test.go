package console_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/console"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/memory"
	"github.com/tu-usuario/warehouse-console/pkg/logger"
)

// ─── Dobles de prueba ────────────────────────────────────────────────────────

// stubModule módulo con render programable, cuenta cuántas veces se renderiza.
type stubModule struct {
	renders int
	err     error
}

func (m *stubModule) Render(_ context.Context, _ *console.Session, _ console.Params) (interface{}, error) {
	m.renders++
	if m.err != nil {
		return nil, m.err
	}
	return map[string]string{"module": "ok"}, nil
}

// stubSelector selector de bodega programable.
type stubSelector struct {
	warehouse *entity.Warehouse
	err       error
}

func (s *stubSelector) Select(_ context.Context, _ *auth.Identity, _ string) (*entity.Warehouse, error) {
	return s.warehouse, s.err
}

type fixture struct {
	ctrl       *console.Controller
	sess       *console.Session
	warehouses *stubModule
	inventory  *stubModule
	built      map[string]int // cuántas veces corrió cada fábrica
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sess:       &console.Session{Identity: &auth.Identity{UserID: "u1", Name: "Demo", Role: entity.RoleManager}},
		warehouses: &stubModule{},
		inventory:  &stubModule{},
		built:      map[string]int{},
	}
	factories := map[string]console.ModuleFactory{
		console.ViewWarehouses: func() console.ViewModule { f.built[console.ViewWarehouses]++; return f.warehouses },
		console.ViewInventory:  func() console.ViewModule { f.built[console.ViewInventory]++; return f.inventory },
	}
	f.ctrl = console.NewController(f.sess, factories, logger.Nop())
	return f
}

func (f *fixture) selectWarehouse(t *testing.T, id, name string) {
	t.Helper()
	f.sess.Warehouse = &entity.Warehouse{ID: id, Name: name}
}

// ─── Activación de vistas ────────────────────────────────────────────────────

// Sin bodega seleccionada cualquier vista distinta del selector redirige a él,
// con exactamente una advertencia.
func TestActivateView_SinBodegaRedirige(t *testing.T) {
	f := newFixture(t)

	act := f.ctrl.ActivateView(context.Background(), console.ViewInventory, nil)

	assert.Equal(t, console.ViewInventory, act.Requested)
	assert.Equal(t, console.ViewWarehouses, act.Current)
	assert.True(t, act.Redirected)
	require.Len(t, act.Notifications, 1)
	assert.Equal(t, console.NotifyWarning, act.Notifications[0].Kind)
	assert.Equal(t, 0, f.inventory.renders, "la vista pedida no debe renderizarse")
	assert.Equal(t, 1, f.warehouses.renders)
}

// Repetir la vista actual es idempotente: no hay segundo render.
func TestActivateView_RepetirEsNoOp(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	first := f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	require.Equal(t, console.ViewInventory, first.Current)
	require.Equal(t, 1, f.inventory.renders)

	again := f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	assert.Equal(t, console.ViewInventory, again.Current)
	assert.Equal(t, 1, f.inventory.renders, "reactivar la vista actual no re-renderiza")
}

// Una vista desconocida cae en el fallback "no encontrado" sin cambiar la
// vista actual.
func TestActivateView_VistaDesconocida(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	act := f.ctrl.ActivateView(ctx, "supplies", nil)

	fb, ok := act.View.(*console.FallbackView)
	require.True(t, ok)
	assert.Equal(t, console.FallbackNotFound, fb.Kind)
	assert.Equal(t, console.ViewInventory, act.Current, "la vista actual no cambia")
	assert.Equal(t, console.ViewInventory, f.ctrl.CurrentView())
}

// Un fallo de render cae en la vista de error sin cambiar la actual; al
// reintentar, el render vuelve a correr y puede recuperarse.
func TestActivateView_ErrorDeRenderNoFijaVista(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	f.inventory.err = errors.New("repositorio caído")
	act := f.ctrl.ActivateView(ctx, console.ViewInventory, nil)

	fb, ok := act.View.(*console.FallbackView)
	require.True(t, ok)
	assert.Equal(t, console.FallbackError, fb.Kind)
	assert.Equal(t, "repositorio caído", fb.Message)
	assert.Empty(t, f.ctrl.CurrentView())

	// El fallo se resuelve: el reintento de la misma activación funciona.
	f.inventory.err = nil
	retry := f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	assert.Equal(t, console.ViewInventory, retry.Current)
	assert.Equal(t, 2, f.inventory.renders)
}

// Activar el selector de bodegas descarta la bodega seleccionada.
func TestActivateView_SelectorDescartaBodega(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	require.True(t, f.sess.HasWarehouse())

	f.ctrl.ActivateView(ctx, console.ViewWarehouses, nil)
	assert.False(t, f.sess.HasWarehouse())
}

// Los módulos se construyen en el primer uso y quedan en caché.
func TestActivateView_ConstruccionPerezosa(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	// El selector de bodegas se construye al crear el controlador.
	assert.Equal(t, 1, f.built[console.ViewWarehouses])
	assert.Equal(t, 0, f.built[console.ViewInventory])

	f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	f.ctrl.ActivateView(ctx, console.ViewWarehouses, nil)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	f.ctrl.ActivateView(ctx, console.ViewInventory, nil)

	assert.Equal(t, 1, f.built[console.ViewInventory], "la fábrica corre una sola vez")
}

// El breadcrumb usa el nombre de la bodega cuando hay una seleccionada.
func TestActivateView_BreadcrumbConBodega(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")

	act := f.ctrl.ActivateView(context.Background(), console.ViewInventory, nil)
	assert.Equal(t, []string{"Bodegas", "Склад Белая Церковь"}, act.Breadcrumb)
}

// La vista de usuarios por debajo de manager se rinde como acceso denegado y
// no se registra como vista actual: si la identidad luego se eleva (el
// registro de sesiones la refresca en cada petición), el reintento de la
// misma activación renderiza el listado.
func TestActivateView_UsuariosAccesoDenegado(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))
	authUC := auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "test",
	})

	sess := &console.Session{
		Identity: &auth.Identity{
			UserID: "keeper_1", Name: "Кладовщик",
			Role: entity.RoleWarehouseKeeper, Warehouses: []string{"warehouse_1"},
		},
		Warehouse: &entity.Warehouse{ID: "warehouse_1", Name: "Склад Белая Церковь"},
	}
	inventory := &stubModule{}
	factories := map[string]console.ModuleFactory{
		console.ViewWarehouses: func() console.ViewModule { return &stubModule{} },
		console.ViewInventory:  func() console.ViewModule { return inventory },
		console.ViewUsers:      func() console.ViewModule { return console.NewUsersModule(authUC) },
	}
	ctrl := console.NewController(sess, factories, logger.Nop())
	ctx := context.Background()

	ctrl.ActivateView(ctx, console.ViewInventory, nil)
	require.Equal(t, console.ViewInventory, ctrl.CurrentView())

	act := ctrl.ActivateView(ctx, console.ViewUsers, nil)
	fb, ok := act.View.(*console.FallbackView)
	require.True(t, ok)
	assert.Equal(t, console.FallbackAccessDenied, fb.Kind)
	assert.Equal(t, console.ViewInventory, act.Current, "acceso denegado no cambia la vista actual")
	assert.Equal(t, console.ViewInventory, ctrl.CurrentView())

	// Rol elevado: el reintento ya no es el no-op de la vista actual.
	sess.Identity.Role = entity.RoleManager
	retry := ctrl.ActivateView(ctx, console.ViewUsers, nil)
	users, ok := retry.View.(*console.UsersView)
	require.True(t, ok, "manager debe ver el listado, no %T", retry.View)
	assert.Equal(t, 3, users.Users.Total)
	assert.Equal(t, console.ViewUsers, retry.Current)
}

// Un fallo de render antes de cualquier vista activa no inventa breadcrumb.
func TestActivateView_FalloInicialSinBreadcrumb(t *testing.T) {
	f := newFixture(t)
	f.warehouses.err = errors.New("repositorio caído")

	act := f.ctrl.ActivateView(context.Background(), console.ViewWarehouses, nil)
	fb, ok := act.View.(*console.FallbackView)
	require.True(t, ok)
	assert.Equal(t, console.FallbackError, fb.Kind)
	assert.Empty(t, act.Breadcrumb)
}

// ─── Selección de bodega ─────────────────────────────────────────────────────

// Una selección válida fija la bodega, notifica el éxito y activa el
// dashboard de inventario.
func TestSelectWarehouse_Exito(t *testing.T) {
	f := newFixture(t)
	selector := &stubSelector{warehouse: &entity.Warehouse{ID: "warehouse_2", Name: "Склад Киев"}}

	act, err := f.ctrl.SelectWarehouse(context.Background(), selector, "warehouse_2")
	require.NoError(t, err)

	assert.Equal(t, console.ViewInventory, act.Current)
	assert.Equal(t, "warehouse_2", f.sess.Warehouse.ID)
	require.Len(t, act.Notifications, 1)
	assert.Equal(t, console.NotifySuccess, act.Notifications[0].Kind)
	assert.Contains(t, act.Notifications[0].Message, "Склад Киев")
}

// Bodega inexistente y acceso denegado se propagan como error con su
// notificación, sin fijar bodega.
func TestSelectWarehouse_Fallos(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind string
	}{
		{"no encontrada", domain.ErrNotFound, console.NotifyError},
		{"acceso denegado", domain.ErrForbidden, console.NotifyError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.ctrl.SelectWarehouse(context.Background(), &stubSelector{err: tc.err}, "warehouse_9")
			require.ErrorIs(t, err, tc.err)
			assert.False(t, f.sess.HasWarehouse())

			// La notificación queda pendiente para la siguiente activación.
			act := f.ctrl.ActivateView(context.Background(), console.ViewWarehouses, nil)
			require.NotEmpty(t, act.Notifications)
			assert.Equal(t, tc.kind, act.Notifications[0].Kind)
		})
	}
}

// ─── Refresh ─────────────────────────────────────────────────────────────────

// RefreshIfCurrent re-renderiza solo la vista que sigue activa.
func TestRefreshIfCurrent(t *testing.T) {
	f := newFixture(t)
	f.selectWarehouse(t, "warehouse_1", "Склад Белая Церковь")
	ctx := context.Background()

	assert.Nil(t, f.ctrl.RefreshIfCurrent(ctx, console.ViewInventory), "sin vista activa no hay refresh")

	f.ctrl.ActivateView(ctx, console.ViewInventory, nil)
	act := f.ctrl.RefreshIfCurrent(ctx, console.ViewInventory)
	require.NotNil(t, act)
	assert.Equal(t, console.ViewInventory, act.Current)
	assert.Equal(t, 2, f.inventory.renders)

	assert.Nil(t, f.ctrl.RefreshIfCurrent(ctx, console.ViewMovements))
}
