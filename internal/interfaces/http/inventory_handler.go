package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/application/console"
	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/domain"
)

// InventoryHandler maneja las operaciones de stock sobre la bodega de trabajo
// de la sesión (protegido).
type InventoryHandler struct {
	registerUC *catalog.RegisterOperationUseCase
	sessions   *SessionRegistry
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *catalog.RegisterOperationUseCase, sessions *SessionRegistry) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, sessions: sessions}
}

// operationResponse resultado de la operación más el re-render del dashboard
// si seguía siendo la vista actual.
type operationResponse struct {
	Result *dto.OperationResultDTO `json:"result"`
	View   *dto.ActivationDTO      `json:"view,omitempty"`
}

// RegisterOperation godoc
// @Summary      Registrar operación de stock (add/subtract)
// @Description  Opera sobre la bodega seleccionada en la sesión. subtract exige
//
//	destinatario y cantidad ≤ disponible; los fallos de validación
//	vuelven por campo y no mutan nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productID  path  string  true  "ID del producto"
// @Param        body  body  dto.RegisterOperationRequest  true  "type, quantity, recipient, destination, comment"
// @Success      200  {object}  operationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{productID}/operations [post]
func (h *InventoryHandler) RegisterOperation(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if !identity.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	ctrl := h.sessions.ControllerFor(identity)
	sess := ctrl.Session()
	if !sess.HasWarehouse() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_WAREHOUSE", Message: "seleccione primero una bodega de trabajo"})
	}

	var in dto.RegisterOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.registerUC.RegisterOperation(c.Context(), sess.Warehouse.ID, identity.UserID, c.Params("productID"), in)
	if err != nil {
		if fields, ok := domain.AsValidationErrors(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: err.Error(),
				Fields:  map[string]string{"quantity": "cantidad mayor al stock disponible"},
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	label := "agregado"
	if result.Type == catalog.OperationSubtract {
		label = "descontado"
	}
	ctrl.Notifier().Notify(console.NotifySuccess, "Operación registrada",
		result.Quantity.String()+" "+label)

	// Refrescar el dashboard solo si sigue siendo la vista actual.
	view := ctrl.RefreshIfCurrent(c.Context(), console.ViewInventory)
	return c.JSON(operationResponse{Result: result, View: view})
}
