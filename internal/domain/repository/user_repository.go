package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByLogin busca por username o email (el formulario acepta ambos).
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
