package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository en memoria.
type UserRepository struct {
	store *Store
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.ID == user.ID || strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("usuario %s: %w", user.Username, domain.ErrDuplicate)
		}
	}
	clone := *user
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now().UTC()
	}
	clone.UpdatedAt = clone.CreatedAt
	r.store.users = append(r.store.users, &clone)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("usuario %s: %w", id, domain.ErrUserNotFound)
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("login %s: %w", login, domain.ErrUserNotFound)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}
