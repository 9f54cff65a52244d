package console

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// UsersView view model de la administración de usuarios.
type UsersView struct {
	Users *dto.UserListResponse `json:"users"`
}

// UsersModule módulo de administración de usuarios. Requiere rol manager o
// superior; por debajo se rinde la vista de acceso denegado, no un error.
type UsersModule struct {
	authUC *auth.AuthUseCase
}

// NewUsersModule construye el módulo.
func NewUsersModule(authUC *auth.AuthUseCase) *UsersModule {
	return &UsersModule{authUC: authUC}
}

// Render lista usuarios para manager+; identidades con menos privilegio
// reciben la vista de acceso denegado.
func (m *UsersModule) Render(ctx context.Context, sess *Session, _ Params) (interface{}, error) {
	if !sess.Identity.HasRole(entity.RoleManager) {
		return accessDeniedView(), nil
	}
	list, err := m.authUC.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &UsersView{Users: list}, nil
}
