// Command migrate applies or rolls back the embedded database migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osse101/FarmPlanner_Go/internal/config"
	"github.com/osse101/FarmPlanner_Go/internal/database"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

const usage = "usage: migrate <up|down|status>"

const migrateTimeout = 2 * time.Minute

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(subcmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	connString := cfg.GetDBConnString()
	switch subcmd {
	case "up":
		return database.Migrate(ctx, connString)
	case "down":
		return database.MigrateDown(ctx, connString)
	case "status":
		version, err := database.MigrationVersion(ctx, connString)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d\n", version)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q (%s)", subcmd, usage)
	}
}
