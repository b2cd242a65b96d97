package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/FarmPlanner_Go/internal/database"
)

// setupTestDB starts a throwaway Postgres, applies the migrations and returns a pool.
// The test is skipped when Docker is not available.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, connStr))

	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// seedWorld inserts a small world on top of the fixture chain:
// two monsters dropping test1, one of them in two sub-areas, plus a dangling link.
func seedWorld(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	stmts := []string{
		`INSERT INTO areas (id, name) VALUES (1, 'Amakna')`,
		`INSERT INTO sub_areas (id, name, area_id) VALUES (10, 'Field', 1), (11, 'Forest', 1), (12, 'Empty', 1)`,
		`INSERT INTO maps (id, name, x, y, sub_area_id) VALUES (100, 'Gate', 0, 0, 10), (101, NULL, 1, 0, 10), (102, NULL, 5, 5, 11)`,
		`INSERT INTO monsters (id, name) VALUES (1, 'Gobball'), (2, 'Arachnee')`,
		`INSERT INTO drops (monster_id, item_id) VALUES (1, 69696969), (2, 69696969)`,
		`INSERT INTO monsters_sub_areas (monster_id, sub_area_id) VALUES (1, 10), (1, 11), (2, 10)`,
		`INSERT INTO items (id, name, category, image_id) VALUES
			(1, 'Épée de Boisaille', 0, 1),
			(2, 'Epee cachee', 0, 89042),
			(3, 'Epee quete', 9, 1)`,
	}
	for _, s := range stmts {
		_, err := pool.Exec(ctx, s)
		require.NoError(t, err, s)
	}
}
