package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige al menos el rol indicado.
// Debe usarse DESPUÉS de AuthMiddleware (necesita la identidad en Locals).
//
// Comportamiento:
//   - 401 Unauthorized → sin identidad en el contexto.
//   - 403 Forbidden    → rol insuficiente (admin ⊇ manager ⊇ warehouse_keeper).
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		if !identity.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el token",
			})
		}
		if !identity.HasRole(required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere al menos el rol '" + required + "'",
			})
		}
		return c.Next()
	}
}
