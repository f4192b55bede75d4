package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/database"
	"github.com/osse101/Jackpot_Go/internal/database/bolt"
	"github.com/osse101/Jackpot_Go/internal/database/memory"
	"github.com/osse101/Jackpot_Go/internal/database/postgres"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// Storage is the opened jackpot store, its event journal and a way to
// release both
type Storage struct {
	Repo     repository.Jackpot
	EventLog repository.EventLog
	close    func() error
}

// Close releases the underlying connection or file
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage opens the store selected by STORAGE_DRIVER. PostgreSQL is
// migrated to the latest schema before it is returned.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if _, err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Storage{
			Repo:     postgres.NewJackpotRepository(pool),
			EventLog: postgres.NewEventLogRepository(pool),
			close:    func() error { pool.Close(); return nil },
		}, nil

	case config.StorageDriverBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.BoltPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateBoltDir, err)
		}
		repo, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBolt, err)
		}
		slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver, "path", cfg.BoltPath)
		return &Storage{Repo: repo, EventLog: repo.EventLog(), close: repo.Close}, nil

	case config.StorageDriverMemory:
		slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver)
		return &Storage{Repo: memory.NewJackpotRepository(), EventLog: memory.NewEventLogRepository()}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
}
