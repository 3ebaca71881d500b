package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/storage"
	"github.com/cory-johannsen/dungeon/internal/storage/file"
	"github.com/cory-johannsen/dungeon/internal/storage/postgres"
	"github.com/cory-johannsen/dungeon/internal/storage/redis"
	"github.com/cory-johannsen/dungeon/internal/storage/sqlite"
)

// openStore builds the save slot selected by cfg.Storage.Backend. The returned
// func releases it.
func openStore(ctx context.Context, cfg config.Config, noSave bool, logger *zap.Logger) (storage.Store, func(), error) {
	if noSave {
		logger.Info("saving disabled; progress is kept in memory")
		return storage.NewMemoryStore(), func() {}, nil
	}

	logger.Info("opening save slot", zap.String("backend", cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case config.BackendFile:
		s := file.NewStore(cfg.Storage.File.Path, logger)
		return s, closer(s, logger), nil
	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.Storage.SQLite.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, closer(s, logger), nil
	case config.BackendRedis:
		s, err := redis.NewStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis store: %w", err)
		}
		return s, closer(s, logger), nil
	case config.BackendPostgres:
		if err := postgres.Migrate(cfg.Database.DSN()); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return postgres.NewSessionRepository(pool.DB(), logger), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func closer(c io.Closer, logger *zap.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}
}
