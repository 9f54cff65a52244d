package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
// La columna warehouses es text[] con los IDs de bodega accesibles.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	id, username, email, full_name, password_hash, role, warehouses,
	is_active, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users
			(id, username, email, full_name, password_hash, role, warehouses, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		user.Role, user.Warehouses, user.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %s: %w", user.Username, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuario %s: %w", id, domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByLogin busca por username o email, sin distinguir mayúsculas.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($1)`
	u, err := scanUser(r.q.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("login %s: %w", login, domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios por fecha de creación.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users scan: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.Warehouses, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
