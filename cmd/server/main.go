package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"adboard/internal/config"
	v1 "adboard/internal/infrastructure/http/v1"
	"adboard/internal/infrastructure/storage/filestore"
	"adboard/internal/infrastructure/storage/postgres"
	"adboard/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "load config failed", "error", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Server.LogLevel,
		Development: cfg.Server.Env != "production",
	})
	if err != nil {
		logger.Fatal(ctx, "init logger failed", "error", err)
	}
	ctx = logger.WithLogger(ctx, log)

	// Prices are JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	if err := postgres.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsDir); err != nil {
		logger.Fatal(ctx, "migrations failed", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.URL))
	if err != nil {
		logger.Fatal(ctx, "connect to database failed", "error", err)
	}
	defer pool.Close()

	images, err := filestore.NewLocal(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		logger.Fatal(ctx, "init media store failed", "error", err)
	}

	router := v1.NewRouter(v1.RouterConfig{
		TxManager: postgres.NewTxManager(pool),
		Pool:      pool,
		Images:    images,
		PageSize:  cfg.List.PageSize,
		MediaURL:  cfg.Media.BaseURL,
		Env:       cfg.Server.Env,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Request contexts inherit the configured logger.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info(ctx, "server starting", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown failed", "error", err)
	}
	logger.Info(ctx, "server stopped")
}
