package console

import (
	"context"
	"sync"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/pkg/logger"
)

// Controller es la única fuente de verdad de "qué vista está activa" para una
// sesión. Resuelve la vista pedida a su módulo, construye módulos de forma
// perezosa en el primer uso y convierte cualquier fallo de render en una vista
// de reserva; ningún error de render se propaga.
type Controller struct {
	mu        sync.Mutex
	sess      *Session
	factories map[string]ModuleFactory
	modules   map[string]ViewModule
	collector *Collector
	log       *logger.Logger

	current string // vacío = ninguna vista activa
}

// NewController construye el controlador de una sesión. El módulo de bodegas
// se construye de inmediato; inventario y movimientos se cargan bajo demanda
// en su primera activación y quedan en caché por la vida del controlador.
func NewController(sess *Session, factories map[string]ModuleFactory, log *logger.Logger) *Controller {
	c := &Controller{
		sess:      sess,
		factories: factories,
		modules:   make(map[string]ViewModule, len(factories)),
		collector: &Collector{},
		log:       log,
	}
	if f, ok := factories[ViewWarehouses]; ok {
		c.modules[ViewWarehouses] = f()
	}
	return c
}

// Session devuelve la sesión del controlador.
func (c *Controller) Session() *Session {
	return c.sess
}

// Notifier devuelve el colector de notificaciones de la sesión, para que los
// casos de uso externos (selección de bodega, operaciones) emitan en él.
func (c *Controller) Notifier() Notifier {
	return c.collector
}

// CurrentView devuelve la vista registrada como actual.
func (c *Controller) CurrentView() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// ActivateView activa una vista por nombre.
//
//   - Repetir la vista actual es un no-op idempotente.
//   - Toda vista salvo el selector de bodegas exige bodega seleccionada; sin
//     ella se redirige al selector con una advertencia (decisión de política,
//     no un error).
//   - Nombres desconocidos caen en la vista "no encontrado"; fallos de render
//     en la vista de error con el mensaje del fallo; un módulo puede rendir él
//     mismo una vista de reserva (acceso denegado). Ninguna vista de reserva
//     actualiza la vista actual, así que reintentar la misma petición vuelve a
//     intentar el render.
func (c *Controller) ActivateView(ctx context.Context, name string, params Params) *dto.ActivationDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activateLocked(ctx, name, params)
}

func (c *Controller) activateLocked(ctx context.Context, name string, params Params) *dto.ActivationDTO {
	if name == c.current {
		return c.activation(name, nil)
	}

	if name != ViewWarehouses && !c.sess.HasWarehouse() {
		c.collector.Notify(NotifyWarning, "Atención", "seleccione primero una bodega de trabajo")
		act := c.activateLocked(ctx, ViewWarehouses, nil)
		act.Requested = name
		act.Redirected = true
		return act
	}

	module := c.resolveLocked(name)
	if module == nil {
		c.log.Warn().Str("view", name).Msg("vista desconocida")
		return c.activation(name, notFoundView())
	}

	// Activar el selector de bodegas descarta la bodega seleccionada.
	if name == ViewWarehouses {
		c.sess.Warehouse = nil
	}

	view, err := module.Render(ctx, c.sess, params)
	if err != nil {
		c.log.Error().Err(err).Str("view", name).Msg("render de vista")
		return c.activation(name, errorView(err.Error()))
	}

	// Un módulo puede rendir una vista de reserva (p. ej. acceso denegado);
	// igual que con error y no-encontrado, no se registra como vista actual,
	// así que reintentar con más privilegios vuelve a renderizar.
	if fb, ok := view.(*FallbackView); ok {
		return c.activation(name, fb)
	}

	c.current = name
	return c.activation(name, view)
}

// SelectWarehouse fija la bodega de trabajo de la sesión, validando existencia
// y acceso, y activa el dashboard de inventario.
func (c *Controller) SelectWarehouse(ctx context.Context, selector WarehouseSelector, warehouseID string) (*dto.ActivationDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	warehouse, err := selector.Select(ctx, c.sess.Identity, warehouseID)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			c.collector.Notify(NotifyError, "Error", "bodega no encontrada")
		case domain.ErrForbidden:
			c.collector.Notify(NotifyError, "Acceso denegado", "no tiene permisos para operar esta bodega")
		}
		return nil, err
	}

	c.sess.Warehouse = warehouse
	c.collector.Notify(NotifySuccess, "Conectado", "bodega \""+warehouse.Name+"\" seleccionada")
	return c.activateLocked(ctx, ViewInventory, nil), nil
}

// RefreshIfCurrent vuelve a renderizar la vista indicada solo si sigue siendo
// la actual (p. ej. tras registrar una operación de stock).
func (c *Controller) RefreshIfCurrent(ctx context.Context, name string) *dto.ActivationDTO {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != name {
		return nil
	}
	module := c.resolveLocked(name)
	if module == nil {
		return nil
	}
	view, err := module.Render(ctx, c.sess, nil)
	if err != nil {
		c.log.Error().Err(err).Str("view", name).Msg("re-render de vista")
		return c.activation(name, errorView(err.Error()))
	}
	return c.activation(name, view)
}

// resolveLocked devuelve el módulo de la vista, construyéndolo en el primer
// uso. Nombres sin fábrica devuelven nil.
func (c *Controller) resolveLocked(name string) ViewModule {
	if m, ok := c.modules[name]; ok {
		return m
	}
	f, ok := c.factories[name]
	if !ok {
		return nil
	}
	m := f()
	c.modules[name] = m
	return m
}

// activation arma el resultado de la activación con el estado final: vista
// actual, navegación y breadcrumb (el nombre de la bodega gana sobre el título
// genérico cuando hay una seleccionada).
func (c *Controller) activation(requested string, view interface{}) *dto.ActivationDTO {
	var breadcrumb []string
	switch {
	case c.sess.HasWarehouse():
		breadcrumb = []string{ViewTitle(ViewWarehouses), c.sess.Warehouse.Name}
	case c.current != "":
		breadcrumb = []string{ViewTitle(c.current)}
	}
	return &dto.ActivationDTO{
		Requested:     requested,
		Current:       c.current,
		NavActive:     c.current,
		Breadcrumb:    breadcrumb,
		View:          view,
		Notifications: c.collector.Drain(),
	}
}

// WarehouseSelector valida la selección de una bodega para una identidad.
// Lo implementa usecase.WarehouseUseCase; la interfaz evita el import cíclico.
type WarehouseSelector interface {
	Select(ctx context.Context, identity *auth.Identity, warehouseID string) (*entity.Warehouse, error)
}
