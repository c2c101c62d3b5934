package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Reforge_Go/internal/bootstrap"
	"github.com/osse101/Reforge_Go/internal/config"
	"github.com/osse101/Reforge_Go/internal/economy"
	"github.com/osse101/Reforge_Go/internal/eligibility"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/progression"
	"github.com/osse101/Reforge_Go/internal/recipe"
	"github.com/osse101/Reforge_Go/internal/reforge"
	"github.com/osse101/Reforge_Go/internal/server"
)

// ShutdownTimeout bounds the graceful drain of in-flight requests
const ShutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Reforge exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := progression.NewManager(cfg.ConfigPath)
	if err := manager.Load(ctx); err != nil {
		// The manager keeps serving the built-in defaults
		slog.Warn("Progression config unusable", "path", cfg.ConfigPath, "error", err)
	}

	catalog, err := i18n.Load()
	if err != nil {
		return err
	}

	levels, err := bootstrap.OpenLevelStore(ctx, cfg)
	if err != nil {
		return err
	}

	registry := economy.NewRegistry()
	registry.Register(ctx, economy.ProviderMemory, economy.NewMemoryProvider(cfg.StartingBalance))
	registry.Activate(ctx, cfg.EconomyProvider)

	gateway := inventory.NewMemory(cfg.InventoryCapacity, cfg.ItemTags)
	filter := eligibility.NewFilter(manager, levels.Store, gateway)
	reforgeService := reforge.NewService(manager, filter, levels.Store, gateway, registry, recipe.NewResolver(manager))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		Reforge:     reforgeService,
		Catalog:     catalog,
		Config:      manager,
		Inventory:   gateway,
		Economy:     registry,
		Store:       levels.Pinger,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return progression.NewWatcher(manager, cfg.ConfigWatchInterval).Run(gctx)
	})

	g.Go(func() error {
		return progression.ReportSnapshots(gctx, manager)
	})

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server: srv,
			Store:  levels.Store,
		})
		return nil
	})

	return g.Wait()
}
