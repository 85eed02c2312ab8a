package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/afromanapp/afroman-backend/api/routes"
	"github.com/afromanapp/afroman-backend/internal/cart"
	catalogsvc "github.com/afromanapp/afroman-backend/internal/catalog"
	"github.com/afromanapp/afroman-backend/internal/entitlement"
	"github.com/afromanapp/afroman-backend/internal/products"
	"github.com/afromanapp/afroman-backend/internal/slots"
	"github.com/afromanapp/afroman-backend/internal/watchlist"
	"github.com/afromanapp/afroman-backend/pkg/auth/session"
	"github.com/afromanapp/afroman-backend/pkg/config"
	"github.com/afromanapp/afroman-backend/pkg/db"
	"github.com/afromanapp/afroman-backend/pkg/logger"
	"github.com/afromanapp/afroman-backend/pkg/metrics"
	"github.com/afromanapp/afroman-backend/pkg/migrate"
	"github.com/afromanapp/afroman-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	slotStore, err := slots.NewRedisStore(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create slot store", err)
		os.Exit(1)
	}

	productCatalog := products.NewCatalog()

	cartService, err := cart.NewService(cart.ServiceParams{
		Slots:   slotStore,
		Catalog: productCatalog,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	watchlistService, err := watchlist.NewService(watchlist.ServiceParams{
		Slots:  slotStore,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create watchlist service", err)
		os.Exit(1)
	}

	catalogService, err := catalogsvc.NewService(catalogsvc.ServiceParams{
		Repo:   catalogsvc.NewRepository(dbClient.DB()),
		Slots:  slotStore,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	entitlementService, err := entitlement.NewService(entitlement.ServiceParams{
		Repo:   entitlement.NewRepository(dbClient.DB()),
		Slots:  slotStore,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create entitlement service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			Metrics:        httpMetrics,
			SessionManager: sessionManager,
			ProductCatalog: productCatalog,
			CartService:    cartService,
			WatchlistSvc:   watchlistService,
			CatalogService: catalogService,
			EntitlementSvc: entitlementService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
