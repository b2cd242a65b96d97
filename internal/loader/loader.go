// Package loader selects where the planner reads reference data and user state from.
package loader

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/database/postgres"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// Backend bundles the collaborators of the planner served by one data source
type Backend struct {
	Kind    string
	Recipes repository.RecipeSource
	Catalog repository.Catalog
	State   repository.UserState
	Loader  repository.DataLoader
}

// Config selects the backend
type Config struct {
	Kind         string
	SnapshotPath string
}

// NewDatabase serves everything from Postgres
func NewDatabase(pool *pgxpool.Pool) *Backend {
	return &Backend{
		Kind:    KindPostgres,
		Recipes: postgres.NewRecipeRepository(pool),
		Catalog: postgres.NewItemRepository(pool),
		State:   postgres.NewUserStateRepository(pool),
		Loader:  postgres.NewLoaderRepository(pool),
	}
}

// NewSnapshotBackend serves everything from an in-memory snapshot
func NewSnapshotBackend(s *Snapshot) *Backend {
	return &Backend{
		Kind:    KindSnapshot,
		Recipes: s,
		Catalog: s,
		State:   s,
		Loader:  s,
	}
}

// New picks the backend named by cfg.Kind. pool is only used by the postgres kind.
func New(ctx context.Context, cfg Config, pool *pgxpool.Pool) (*Backend, error) {
	var b *Backend
	switch cfg.Kind {
	case KindPostgres, "":
		if pool == nil {
			return nil, fmt.Errorf("%s", ErrMsgMissingPool)
		}
		b = NewDatabase(pool)
	case KindSnapshot:
		if cfg.SnapshotPath == "" {
			return nil, fmt.Errorf("%s", ErrMsgMissingSnapshotPath)
		}
		s, err := LoadSnapshot(ctx, cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		b = NewSnapshotBackend(s)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownKind, cfg.Kind)
	}
	logger.FromContext(ctx).Info(LogMsgBackendSelected, "kind", b.Kind)
	return b, nil
}
