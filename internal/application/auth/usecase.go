package auth

import (
	"context"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
	"github.com/tu-usuario/warehouse-console/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	RememberExpMinutes int // TTL extendido cuando el usuario marca "recordarme"
	Issuer             string
}

// AuthUseCase casos de uso de autenticación: login y consulta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica login/password, genera JWT y retorna token + usuario.
// RememberMe extiende el TTL del token; reemplaza la bandera de sesión
// persistente del cliente.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	expMinutes := uc.jwtCfg.ExpMinutes
	if in.RememberMe && uc.jwtCfg.RememberExpMinutes > expMinutes {
		expMinutes = uc.jwtCfg.RememberExpMinutes
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		UserID:     user.ID,
		Name:       user.FullName,
		Role:       user.Role,
		Warehouses: user.Warehouses,
	}, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ListUsers devuelve todos los usuarios (vista de administración, manager+).
func (uc *AuthUseCase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		Warehouses: u.Warehouses,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}
