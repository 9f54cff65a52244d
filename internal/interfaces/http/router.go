package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
	"github.com/tu-usuario/warehouse-console/internal/application/usecase"
	"github.com/tu-usuario/warehouse-console/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	WarehouseUC *usecase.WarehouseUseCase
	RegisterUC  *catalog.RegisterOperationUseCase
	ReportsUC   *reports.ReportsUseCase
	Sessions    *SessionRegistry
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Consola: activación de vistas y selección de bodega
	consoleHandler := NewConsoleHandler(deps.Sessions, deps.WarehouseUC)
	consoleGroup := protected.Group("/console")
	consoleGroup.Get("/views/:name", consoleHandler.ActivateView)
	consoleGroup.Post("/warehouse", consoleHandler.SelectWarehouse)

	// Warehouses (crear exige manager+)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", RequireRole(entity.RoleManager), warehouseHandler.Create)

	// Operaciones de stock sobre la bodega de la sesión
	inventoryHandler := NewInventoryHandler(deps.RegisterUC, deps.Sessions)
	protected.Post("/inventory/products/:productID/operations", inventoryHandler.RegisterOperation)

	// Exportación de reportes
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.Sessions)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/stock/export", reportsHandler.ExportStock)
	reportsGroup.Get("/movements/export", reportsHandler.ExportMovements)

	// Usuarios (manager+)
	userHandler := NewUserHandler(deps.AuthUC)
	protected.Get("/users", RequireRole(entity.RoleManager), userHandler.List)
}
