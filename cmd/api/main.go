package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/uniformworks/portal-backend/api/routes"
	"github.com/uniformworks/portal-backend/internal/bundles"
	"github.com/uniformworks/portal-backend/internal/cart"
	"github.com/uniformworks/portal-backend/internal/checkout"
	"github.com/uniformworks/portal-backend/internal/orders"
	"github.com/uniformworks/portal-backend/internal/products"
	"github.com/uniformworks/portal-backend/internal/users"
	"github.com/uniformworks/portal-backend/pkg/config"
	"github.com/uniformworks/portal-backend/pkg/db"
	"github.com/uniformworks/portal-backend/pkg/logger"
	"github.com/uniformworks/portal-backend/pkg/metrics"
	"github.com/uniformworks/portal-backend/pkg/migrate"
	"github.com/uniformworks/portal-backend/pkg/pricing"
)

const shutdownGrace = 10 * time.Second

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
		logg.Error(context.Background(), "failed to bootstrap store", err)
		os.Exit(1)
	}

	if err := migrate.AutoRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	userService, err := users.NewService(users.NewRepository(dbClient.DB()))
	requireService(logg, "users", err)
	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	requireService(logg, "products", err)
	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	requireService(logg, "orders", err)
	bundleService, err := bundles.NewService(bundles.NewRepository(dbClient.DB()))
	requireService(logg, "bundles", err)

	cartManager := cart.NewManager()
	policy := pricing.NewPolicy(cfg.Pricing)
	checkoutService := checkout.NewService(cfg.Checkout, policy)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

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
			Config:      cfg,
			Logger:      logg,
			Store:       dbClient,
			Users:       userService,
			Products:    productService,
			Orders:      orderService,
			Bundles:     bundleService,
			CartManager: cartManager,
			Checkout:    checkoutService,
			Registry:    registry,
			HTTPMetrics: metrics.NewHTTPMetrics(registry),
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		closeErr := multierr.Combine(
			server.Shutdown(shutdownCtx),
			dbClient.Close(),
		)
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err != nil {
		logg.Error(logg.WithField(context.Background(), "service", name), "failed to build service", err)
		os.Exit(1)
	}
}
