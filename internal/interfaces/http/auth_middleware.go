package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/pkg/jwt"
)

// Locals key para la identidad autenticada en Fiber.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad reconstruida
// desde los claims en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentity, &auth.Identity{
			UserID:     claims.UserID,
			Name:       claims.Name,
			Role:       claims.Role,
			Warehouses: claims.Warehouses,
		})
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}

// GetRole devuelve el rol de la identidad del contexto, o vacío.
func GetRole(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.Role
	}
	return ""
}
