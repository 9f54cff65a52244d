package http

import (
	"sync"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/console"
	"github.com/tu-usuario/warehouse-console/pkg/logger"
)

// SessionRegistry mantiene un Controller de consola por usuario autenticado.
// El controlador conserva entre peticiones la vista actual, la bodega
// seleccionada y el estado de consulta de cada módulo.
type SessionRegistry struct {
	mu          sync.Mutex
	controllers map[string]*console.Controller
	deps        console.ModuleDeps
	log         *logger.Logger
}

// NewSessionRegistry construye el registro de sesiones de consola.
func NewSessionRegistry(deps console.ModuleDeps, log *logger.Logger) *SessionRegistry {
	return &SessionRegistry{
		controllers: make(map[string]*console.Controller),
		deps:        deps,
		log:         log,
	}
}

// ControllerFor devuelve el controlador de la identidad, creándolo en su
// primera petición. La identidad se refresca en cada llamada: un token nuevo
// con otro rol no debe operar con privilegios viejos.
func (r *SessionRegistry) ControllerFor(identity *auth.Identity) *console.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctrl, ok := r.controllers[identity.UserID]; ok {
		ctrl.Session().Identity = identity
		return ctrl
	}
	sess := &console.Session{Identity: identity}
	ctrl := console.NewController(sess, console.DefaultFactories(r.deps), r.log)
	r.controllers[identity.UserID] = ctrl
	return ctrl
}

// Drop descarta el controlador de un usuario (logout).
func (r *SessionRegistry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.controllers, userID)
}
