package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mokoena-ai/shopfront-backend/api/routes"
	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
	"github.com/mokoena-ai/shopfront-backend/pkg/config"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
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

	// The catalogue loads exactly once, before traffic. A failure is not
	// retried: the server starts degraded and serves the failure reason
	// until the process is restarted with a reachable catalogue.
	loader := catalog.NewLoader(cfg.Catalog.URL, cfg.Catalog.FetchTimeout)
	products, loadErr := loader.Load(context.Background())
	if loadErr != nil {
		ctx := logg.WithField(context.Background(), "catalog_url", cfg.Catalog.URL)
		logg.Error(ctx, "catalogue load failed, starting degraded", loadErr)
	}

	var store *cart.Store
	if loadErr == nil {
		store = cart.NewStore(products, cfg.Catalog.Currency)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": len(products),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, products, store, loadErr),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
