package database

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "pgx" driver for database/sql, which goose needs.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/migrations"
)

// Migrate applies every embedded migration that has not run yet
func Migrate(ctx context.Context, connString string) error {
	return withGoose(ctx, connString, func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
		}
		logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "version", version)
		return nil
	})
}

// MigrateDown rolls back the most recent migration
func MigrateDown(ctx context.Context, connString string) error {
	return withGoose(ctx, connString, func(db *sql.DB) error {
		if err := goose.DownContext(ctx, db, "."); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
		return nil
	})
}

// MigrationVersion returns the current schema version
func MigrationVersion(ctx context.Context, connString string) (int64, error) {
	var version int64
	err := withGoose(ctx, connString, func(db *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
		}
		version = v
		return nil
	})
	return version, err
}

func withGoose(ctx context.Context, connString string, fn func(db *sql.DB) error) error {
	db, err := sql.Open(GooseDriverName, connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(GooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return fn(db)
}
