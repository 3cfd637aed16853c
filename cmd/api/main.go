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

	"github.com/shopdesk/backoffice-api/internal/application/auth"
	"github.com/shopdesk/backoffice-api/internal/application/ledger"
	"github.com/shopdesk/backoffice-api/internal/application/reports"
	"github.com/shopdesk/backoffice-api/internal/application/usecase"
	infrapdf "github.com/shopdesk/backoffice-api/internal/infrastructure/pdf"
	"github.com/shopdesk/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/shopdesk/backoffice-api/internal/interfaces/http"
	"github.com/shopdesk/backoffice-api/pkg/config"
	"github.com/shopdesk/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewStockLedgerUseCase(txRunner, productRepo)
	movementQueryUC := usecase.NewMovementQueryUseCase(movementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	shopUC := usecase.NewShopUseCase(shopRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, shopRepo, productRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, expenseRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	movementReportUC := reports.NewMovementReportUseCase(movementRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shopdesk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:       ledgerUC,
		MovementQuery:  movementQueryUC,
		MovementReport: movementReportUC,
		ProductUC:      productUC,
		ShopUC:         shopUC,
		EmployeeUC:     employeeUC,
		OrderUC:        orderUC,
		ExpenseUC:      expenseUC,
		CategoryUC:     categoryUC,
		BrandUC:        brandUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
