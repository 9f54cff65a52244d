package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/console"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/usecase"
	"github.com/tu-usuario/warehouse-console/internal/domain"
)

// ConsoleHandler expone la navegación de la consola: activar vistas y
// seleccionar la bodega de trabajo. Todo el comportamiento (redirección al
// selector, vistas de reserva, idempotencia) vive en el Controller.
type ConsoleHandler struct {
	sessions    *SessionRegistry
	warehouseUC *usecase.WarehouseUseCase
}

// NewConsoleHandler construye el handler de consola.
func NewConsoleHandler(sessions *SessionRegistry, warehouseUC *usecase.WarehouseUseCase) *ConsoleHandler {
	return &ConsoleHandler{sessions: sessions, warehouseUC: warehouseUC}
}

// ActivateView godoc
// @Summary      Activar una vista de la consola
// @Description  Los query params viajan al módulo de la vista como parámetros
//
//	de activación (category, search, sort_by, product_id, ...).
//
// @Tags         console
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "warehouses | inventory | movements | reports | users"
// @Success      200  {object}  dto.ActivationDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/console/views/{name} [get]
func (h *ConsoleHandler) ActivateView(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if !identity.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	params := console.Params{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	ctrl := h.sessions.ControllerFor(identity)
	act := ctrl.ActivateView(c.Context(), c.Params("name"), params)
	return c.JSON(act)
}

// SelectWarehouse godoc
// @Summary      Seleccionar la bodega de trabajo
// @Description  Valida existencia y acceso, fija la bodega en la sesión y
//
//	activa el dashboard de inventario.
//
// @Tags         console
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  object{warehouse_id=string}  true  "warehouse_id"
// @Success      200  {object}  dto.ActivationDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/warehouse [post]
func (h *ConsoleHandler) SelectWarehouse(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if !identity.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	var in struct {
		WarehouseID string `json:"warehouse_id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}

	ctrl := h.sessions.ControllerFor(identity)
	act, err := ctrl.SelectWarehouse(c.Context(), h.warehouseUC, in.WarehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta bodega"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(act)
}
