package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/netitem/internal/catalog"
	"github.com/osse101/netitem/internal/config"
	"github.com/osse101/netitem/internal/database"
	"github.com/osse101/netitem/internal/database/postgres"
	"github.com/osse101/netitem/internal/database/sqlite"
	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/logger"
	"github.com/osse101/netitem/internal/modcodec"
	"github.com/osse101/netitem/internal/netitem"
	"github.com/osse101/netitem/internal/repository"
	"github.com/osse101/netitem/internal/server"
	"github.com/osse101/netitem/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

// @title           NetItem API
// @version         1.0
// @description     Item wire strings and stored player inventories.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := initLogger(cfg)
	for _, warning := range config.ValidateEnvWithWarnings(cfg.StoreDriver) {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.OtelEndpoint,
		Enabled:        cfg.OtelEnabled,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("Failed to flush traces", "error", err)
		}
	}()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	items, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load item catalog: %w", err)
	}
	log.Info("Item catalog loaded", "path", cfg.CatalogPath, "items", items.Len())

	ext, err := modcodec.New(log)
	if err != nil {
		return fmt.Errorf("failed to create extension codec: %w", err)
	}
	codec := netitem.NewCodec(ext, netitem.WithEngine(items), netitem.WithLogger(log))

	inventoryService := inventory.NewService(repo, codec, inventory.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, inventoryService, codec, items)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(stopCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) *slog.Logger {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	return logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}

// openStore connects the configured backend and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Config) (repository.Inventory, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, db, database.DialectSQLite, cfg.MigrationsDir); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return sqlite.NewInventoryRepository(db), func() { _ = db.Close() }, nil

	default:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigratePool(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewInventoryRepository(pool), pool.Close, nil
	}
}
