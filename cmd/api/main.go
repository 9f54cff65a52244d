package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/warehouse-console/internal/application/auth"
	"github.com/tu-usuario/warehouse-console/internal/application/catalog"
	"github.com/tu-usuario/warehouse-console/internal/application/console"
	"github.com/tu-usuario/warehouse-console/internal/application/movements"
	"github.com/tu-usuario/warehouse-console/internal/application/reports"
	"github.com/tu-usuario/warehouse-console/internal/application/usecase"
	"github.com/tu-usuario/warehouse-console/internal/domain/repository"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/export"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/warehouse-console/internal/infrastructure/pdf"
	"github.com/tu-usuario/warehouse-console/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/warehouse-console/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-console/pkg/config"
	"github.com/tu-usuario/warehouse-console/pkg/logger"
)

// repos agrupa los puertos de persistencia ya resueltos (memoria o PostgreSQL).
type repos struct {
	warehouse repository.WarehouseRepository
	product   repository.ProductRepository
	category  repository.CategoryRepository
	inventory repository.InventoryRepository
	movement  repository.MovementRepository
	user      repository.UserRepository
	txRunner  catalog.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		r = repos{
			warehouse: postgres.NewWarehouseRepository(pool),
			product:   postgres.NewProductRepository(pool),
			category:  postgres.NewCategoryRepository(pool),
			inventory: postgres.NewInventoryRepository(pool),
			movement:  postgres.NewMovementRepository(pool),
			user:      postgres.NewUserRepository(pool),
			txRunner:  postgres.NewTxRunner(pool),
		}
		log.Info().Msg("persistencia: PostgreSQL")
	} else {
		store := memory.NewStore()
		if cfg.App.DemoSeed {
			if err := memory.Seed(store); err != nil {
				log.Fatal().Err(err).Msg("cargar datos demo")
			}
			log.Info().Msg("dataset demo cargado")
		}
		r = repos{
			warehouse: memory.NewWarehouseRepository(store),
			product:   memory.NewProductRepository(store),
			category:  memory.NewCategoryRepository(store),
			inventory: memory.NewInventoryRepository(store),
			movement:  memory.NewMovementRepository(store),
			user:      memory.NewUserRepository(store),
			txRunner:  memory.NewTxRunner(store),
		}
		log.Info().Msg("persistencia: en memoria (modo demo)")
	}

	authUC := auth.NewAuthUseCase(r.user, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		RememberExpMinutes: cfg.JWT.RememberExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouse)
	catalogUC := catalog.NewCatalogUseCase(r.product, r.category, r.inventory)
	registerUC := catalog.NewRegisterOperationUseCase(r.txRunner, r.product)
	movementsUC := movements.NewMovementsUseCase(r.movement, r.product)
	reportsUC := reports.NewReportsUseCase(r.warehouse, r.product, r.inventory, r.movement,
		map[string]reports.Exporter{
			reports.FormatCSV: export.NewCSVExporter(),
			reports.FormatXML: export.NewXMLExporter(),
			reports.FormatPDF: infrapdf.NewReportGenerator(),
		})

	sessions := httpRouter.NewSessionRegistry(console.ModuleDeps{
		WarehouseUC: warehouseUC,
		CatalogUC:   catalogUC,
		MovementsUC: movementsUC,
		ReportsUC:   reportsUC,
		AuthUC:      authUC,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		RegisterUC:  registerUC,
		ReportsUC:   reportsUC,
		Sessions:    sessions,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
