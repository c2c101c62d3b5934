package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Reforge_Go/internal/config"
	"github.com/osse101/Reforge_Go/internal/database"
	"github.com/osse101/Reforge_Go/internal/database/postgres"
	"github.com/osse101/Reforge_Go/internal/database/sqlite"
	"github.com/osse101/Reforge_Go/internal/handler"
	"github.com/osse101/Reforge_Go/internal/levelstore"
)

// LevelStore is the opened level store plus its readiness probe.
// Pinger is nil for the file backend.
type LevelStore struct {
	Store  levelstore.Store
	Pinger handler.Pinger
}

// OpenLevelStore opens the backend selected by STORE_BACKEND and wraps it in
// the LRU cache.
func OpenLevelStore(ctx context.Context, cfg *config.Config) (*LevelStore, error) {
	var (
		base   levelstore.Store
		pinger handler.Pinger
	)

	switch cfg.StoreBackend {
	case config.BackendFile:
		fs, err := levelstore.OpenFile(ctx, cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenFileStore, err)
		}
		base = fs

	case config.BackendPostgres:
		dsn := cfg.GetDBConnString()
		pool, err := database.NewPool(ctx, dsn, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectPostgres, err)
		}
		if err := database.MigratePostgres(ctx, dsn); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		base = postgres.NewLevelRepository(pool)
		pinger = pool

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLiteStore, err)
		}
		base = store
		pinger = store

	default:
		return nil, fmt.Errorf(ErrMsgUnknownStoreKind, cfg.StoreBackend)
	}

	slog.Info(LogMsgLevelStoreOpened,
		"backend", cfg.StoreBackend,
		"cache_size", cfg.LevelCacheSize,
		"cache_ttl", cfg.LevelCacheTTL)

	return &LevelStore{
		Store:  levelstore.NewCached(base, cfg.LevelCacheSize, cfg.LevelCacheTTL),
		Pinger: pinger,
	}, nil
}
