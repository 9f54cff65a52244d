package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/dto"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
	"github.com/tu-usuario/warehouse-console/internal/domain"
)

// ReportsHandler maneja la exportación de reportes (protegido).
type ReportsHandler struct {
	uc       *reports.ReportsUseCase
	sessions *SessionRegistry
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportsUseCase, sessions *SessionRegistry) *ReportsHandler {
	return &ReportsHandler{uc: uc, sessions: sessions}
}

// ExportStock godoc
// @Summary      Exportar reporte de remanentes
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format        query  string  true   "csv | xml | pdf"
// @Param        warehouse_id  query  string  false  "vacío = bodega de la sesión; 'all' = todas las accesibles"
// @Success      200  {file}  byte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/export [get]
func (h *ReportsHandler) ExportStock(c *fiber.Ctx) error {
	warehouseID, ok := h.resolveWarehouse(c, true)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_WAREHOUSE", Message: "seleccione una bodega o pida warehouse_id=all"})
	}

	data, contentType, err := h.uc.ExportStock(c.Context(), GetIdentity(c), warehouseID, c.Query("format"))
	if err != nil {
		return h.exportError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.`+c.Query("format")+`"`)
	return c.Send(data)
}

// ExportMovements godoc
// @Summary      Exportar reporte de movimientos por período
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  true   "csv | xml | pdf"
// @Param        from    query  string  false  "RFC3339; por defecto hace 30 días"
// @Param        to      query  string  false  "RFC3339; por defecto ahora"
// @Success      200  {file}  byte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements/export [get]
func (h *ReportsHandler) ExportMovements(c *fiber.Ctx) error {
	warehouseID, ok := h.resolveWarehouse(c, false)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_WAREHOUSE", Message: "seleccione primero una bodega de trabajo"})
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
		}
		to = t
	}

	data, contentType, err := h.uc.ExportMovements(c.Context(), GetIdentity(c), warehouseID, c.Query("format"), from, to)
	if err != nil {
		return h.exportError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements-report.`+c.Query("format")+`"`)
	return c.Send(data)
}

// resolveWarehouse decide la bodega del reporte: warehouse_id explícito gana;
// si no, la bodega de la sesión. allowAll permite warehouse_id=all (reporte
// consolidado de remanentes).
func (h *ReportsHandler) resolveWarehouse(c *fiber.Ctx, allowAll bool) (string, bool) {
	if v := c.Query("warehouse_id"); v != "" {
		if allowAll && v == "all" {
			return "", true
		}
		return v, true
	}
	identity := GetIdentity(c)
	if identity == nil {
		return "", false
	}
	sess := h.sessions.ControllerFor(identity).Session()
	if !sess.HasWarehouse() {
		return "", false
	}
	return sess.Warehouse.ID, true
}

func (h *ReportsHandler) exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de exportación desconocido"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene acceso a esta bodega"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
