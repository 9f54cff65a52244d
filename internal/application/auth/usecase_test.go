package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/memory"
	"github.com/tu-usuario/warehouse-console/pkg/jwt"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:             testSecret,
		ExpMinutes:         60,
		RememberExpMinutes: 60 * 24 * 30,
		Issuer:             "warehouse-console-test",
	})
}

// Un login válido emite un JWT con la identidad completa del usuario y la
// representación pública sin hash de clave.
func TestLogin_Exitoso(t *testing.T) {
	uc := newAuthFixture(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Login:    "admin",
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin_1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, []string{"warehouse_1", "warehouse_2"}, claims.Warehouses)

	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}

// El login acepta username o email indistintamente.
func TestLogin_PorEmail(t *testing.T) {
	uc := newAuthFixture(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Login:    "keeper@warehouse.com",
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "keeper_1", resp.User.ID)
}

// Clave incorrecta y usuario inexistente devuelven errores distintos, para que
// la capa HTTP responda 401 con el código correcto.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Login: "admin", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Login: "fantasma", Password: memory.DemoPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// RememberMe extiende la expiración del token más allá del TTL normal.
func TestLogin_RememberMeExtiendeTTL(t *testing.T) {
	uc := newAuthFixture(t)
	ctx := context.Background()

	normal, err := uc.Login(ctx, dto.LoginRequest{Login: "admin", Password: memory.DemoPassword})
	require.NoError(t, err)
	remembered, err := uc.Login(ctx, dto.LoginRequest{Login: "admin", Password: memory.DemoPassword, RememberMe: true})
	require.NoError(t, err)

	normalClaims, err := jwt.Parse(testSecret, normal.Token)
	require.NoError(t, err)
	rememberedClaims, err := jwt.Parse(testSecret, remembered.Token)
	require.NoError(t, err)

	diff := rememberedClaims.ExpiresAt.Sub(normalClaims.ExpiresAt.Time)
	assert.Greater(t, diff, 24*time.Hour, "recordarme debe expirar mucho después que un login normal")
}

// El listado de usuarios expone la representación pública de los tres usuarios
// demo.
func TestListUsers(t *testing.T) {
	uc := newAuthFixture(t)

	resp, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Items, 3)

	roles := map[string]string{}
	for _, u := range resp.Items {
		roles[u.Username] = u.Role
	}
	assert.Equal(t, entity.RoleAdmin, roles["admin"])
	assert.Equal(t, entity.RoleManager, roles["manager"])
	assert.Equal(t, entity.RoleWarehouseKeeper, roles["keeper"])
}
