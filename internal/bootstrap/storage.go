package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/ExpTable_Go/internal/config"
	"github.com/osse101/ExpTable_Go/internal/database"
	"github.com/osse101/ExpTable_Go/internal/database/postgres"
	"github.com/osse101/ExpTable_Go/internal/database/sqlite"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// Storage is the settings repository selected by STORAGE_DRIVER.
// Pool is nil for the memory driver.
type Storage struct {
	Repository settings.Repository
	Pool       database.Pool
}

// Close releases the database handle, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// OpenStorage opens and migrates the configured settings backend
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.StorageDriver {
	case config.StorageMemory:
		st = &Storage{Repository: settings.NewMemoryRepository()}

	case config.StorageSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
			}
		}
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.MigrateSQLite(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		st = &Storage{Repository: sqlite.NewSettingsRepository(db), Pool: database.SQLiteDB{DB: db}}

	case config.StoragePostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		st = &Storage{Repository: postgres.NewSettingsRepository(pool), Pool: pool}

	default:
		return nil, fmt.Errorf("%s: unknown driver %q", ErrMsgFailedOpenStorage, cfg.StorageDriver)
	}

	slog.Info(LogMsgStorageReady, "backend", st.Repository.Backend())
	return st, nil
}
