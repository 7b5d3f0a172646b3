package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendas-api/internal/application/analytics"
	"github.com/jhoicas/tiendas-api/internal/application/auth"
	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	appsales "github.com/jhoicas/tiendas-api/internal/application/sales"
	"github.com/jhoicas/tiendas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AdjustStock     *inventory.AdjustStockUseCase
	TransferStock   *inventory.TransferStockUseCase
	MovementHistory *inventory.MovementHistoryUseCase
	BundleUC        *usecase.BundleUseCase
	ProductUC       *usecase.ProductUseCase
	StoreUC         *usecase.StoreUseCase
	Dashboard       *analytics.DashboardUseCase
	ActivityFeed    *analytics.ActivityFeedUseCase
	CreateSale      *appsales.CreateSaleUseCase
	ListSales       *appsales.ListSalesUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.TransferStock, deps.MovementHistory)
	invGroup.Post("/:id/adjust", inventoryHandler.AdjustStock)
	invGroup.Post("/transfer", inventoryHandler.TransferStock)
	invGroup.Get("/:id/movements", inventoryHandler.ListMovements)

	// Products: catálogo, dashboard y feed (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.BundleUC, deps.ProductUC, deps.Dashboard, deps.ActivityFeed)
	products.Post("/bundle", productHandler.CreateBundle)
	products.Get("/dashboard-stats", productHandler.GetDashboardStats)
	products.Get("/activities", productHandler.GetActivities)
	products.Get("/:id/components", productHandler.GetBundleComponents)
	products.Get("/", productHandler.List)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ListSales)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/", saleHandler.List)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
}
