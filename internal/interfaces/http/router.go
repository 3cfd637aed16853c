package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopdesk/backoffice-api/internal/application/auth"
	"github.com/shopdesk/backoffice-api/internal/application/ledger"
	"github.com/shopdesk/backoffice-api/internal/application/reports"
	"github.com/shopdesk/backoffice-api/internal/application/usecase"
	"github.com/shopdesk/backoffice-api/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	LedgerUC       *ledger.StockLedgerUseCase
	MovementQuery  *usecase.MovementQueryUseCase
	MovementReport *reports.MovementReportUseCase
	ProductUC      *usecase.ProductUseCase
	ShopUC         *usecase.ShopUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	OrderUC        *usecase.OrderUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	CategoryUC     *usecase.CategoryUseCase
	BrandUC        *usecase.BrandUseCase
	DashboardUC    *usecase.DashboardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock movements (protected). The report route is registered before
	// the :id route so "report" is not parsed as a movement id.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.MovementQuery, deps.Log)
	reportHandler := NewReportHandler(deps.MovementReport)
	movements.Post("/check", movementHandler.CheckSufficiency)
	movements.Post("/outgoing", movementHandler.CreateOutgoing)
	movements.Post("/incoming", movementHandler.CreateIncoming)
	movements.Post("/incoming-admin", RequireAdmin(), movementHandler.CreateIncomingAdmin)
	movements.Put("/outgoing/:id", movementHandler.Revise)
	movements.Put("/incoming/:id", movementHandler.Revise)
	movements.Get("/report", reportHandler.MovementReport)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Delete("/:id", RequireAdmin(), movementHandler.Delete)

	// Products (protected)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Shops (protected)
	shops := protected.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Post("/", shopHandler.Create)
	shops.Get("/", shopHandler.List)
	shops.Get("/:id", shopHandler.GetByID)
	shops.Put("/:id", shopHandler.Update)
	shops.Delete("/:id", shopHandler.Delete)

	// Employees (protected, admin only)
	employees := protected.Group("/employees", RequireAdmin())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Orders (protected)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Patch("/:id/payment", orderHandler.RecordPayment)
	orders.Patch("/:id/returns", orderHandler.RecordReturns)
	orders.Delete("/:id", orderHandler.Delete)

	// Cashbook (protected)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Categories and brands (protected)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", brandHandler.Delete)

	// Dashboard (protected)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
