package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/config"
	"github.com/osse101/FarmPlanner_Go/internal/database"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/loader"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// DataSource is the opened backend and, for Postgres, its pool
type DataSource struct {
	Pool    *pgxpool.Pool
	Backend *loader.Backend
}

// Close releases the pool if one was opened
func (d *DataSource) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// InitializeDataSource opens the backend named by cfg.DataSource. The Postgres
// backend is migrated to the latest schema before use.
func InitializeDataSource(ctx context.Context, cfg *config.Config) (*DataSource, error) {
	ds := &DataSource{}

	if cfg.UsesDatabase() {
		connString := cfg.GetDBConnString()
		pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", ErrMsgFailedConnectDatabase, domain.ErrDataSourceUnavailable, err)
		}
		if err := database.Migrate(ctx, connString); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		ds.Pool = pool
	}

	backend, err := loader.New(ctx, loader.Config{Kind: cfg.DataSource, SnapshotPath: cfg.SnapshotPath}, ds.Pool)
	if err != nil {
		ds.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDataSource, err)
	}
	ds.Backend = backend

	logger.FromContext(ctx).Info(LogMsgDataSourceReady, "kind", backend.Kind)
	return ds, nil
}
