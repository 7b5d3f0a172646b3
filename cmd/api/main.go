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

	appanalytics "github.com/jhoicas/tiendas-api/internal/application/analytics"
	"github.com/jhoicas/tiendas-api/internal/application/auth"
	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	appsales "github.com/jhoicas/tiendas-api/internal/application/sales"
	"github.com/jhoicas/tiendas-api/internal/application/usecase"
	infracache "github.com/jhoicas/tiendas-api/internal/infrastructure/cache"
	"github.com/jhoicas/tiendas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tiendas-api/internal/interfaces/http"
	"github.com/jhoicas/tiendas-api/pkg/config"
	"github.com/jhoicas/tiendas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		AppName: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	promoRepo := postgres.NewPromoCodeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache del dashboard: Redis si hay REDIS_ADDR, si no pasa noop.
	var statsCache appanalytics.StatsCache
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisStatsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, dashboard sin cache")
		} else {
			statsCache = redisCache
			defer redisCache.Close()
		}
	}

	adjustUC := inventory.NewAdjustStockUseCase(txRunner, productRepo)
	transferUC := inventory.NewTransferStockUseCase(txRunner, productRepo, storeRepo)
	historyUC := inventory.NewMovementHistoryUseCase(productRepo, movementRepo)
	bundleUC := usecase.NewBundleUseCase(txRunner, productRepo, bundleRepo, storeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, statsCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	activityUC := appanalytics.NewActivityFeedUseCase(analyticsRepo)
	createSaleUC := appsales.NewCreateSaleUseCase(txRunner, productRepo, storeRepo, promoRepo)
	listSalesUC := appsales.NewListSalesUseCase(saleRepo)
	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tiendas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AdjustStock:     adjustUC,
		TransferStock:   transferUC,
		MovementHistory: historyUC,
		BundleUC:        bundleUC,
		ProductUC:       productUC,
		StoreUC:         storeUC,
		Dashboard:       dashboardUC,
		ActivityFeed:    activityUC,
		CreateSale:      createSaleUC,
		ListSales:       listSalesUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
