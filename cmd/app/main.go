package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/FarmPlanner_Go/internal/bootstrap"
	"github.com/osse101/FarmPlanner_Go/internal/config"
	"github.com/osse101/FarmPlanner_Go/internal/crafting"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/handler"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
	"github.com/osse101/FarmPlanner_Go/internal/server"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

// @title FarmPlanner API
// @version 1.0
// @description Wish-list crafting planner: recipe expansion, shortfall and drop sources.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	strict := flag.Bool("strict-env", false, "fail when the .env file is outdated or incomplete")
	flag.Parse()

	if err := run(*strict); err != nil {
		fmt.Fprintf(os.Stderr, "farmplanner: %v\n", err)
		os.Exit(1)
	}
}

func run(strictEnv bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	switch {
	case err != nil && strictEnv:
		return err
	case err != nil:
		logger.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := bootstrap.InitializeDataSource(ctx, cfg)
	if err != nil {
		return err
	}

	deadLetter, err := bootstrap.InitializeDeadLetter(cfg)
	if err != nil {
		ds.Close()
		return err
	}

	handler.InitValidator()

	craftingService := crafting.NewService(ds.Backend.Recipes, ds.Backend.Catalog, crafting.Config{
		SourceCacheSize: cfg.SourceCacheSize,
		SourceCacheTTL:  cfg.SourceCacheTTL,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)
	pool.Start(context.WithoutCancel(ctx))

	p := planner.New(planner.Deps{
		Crafting:      craftingService,
		Catalog:       ds.Backend.Catalog,
		State:         ds.Backend.State,
		Loader:        ds.Backend.Loader,
		Pool:          pool,
		Inbox:         event.NewInbox(cfg.InboxSize),
		DeadLetter:    deadLetter,
		FrameInterval: cfg.FrameInterval,
	})

	components := bootstrap.ShutdownComponents{
		Planner:    p,
		Pool:       pool,
		DeadLetter: deadLetter,
		DataSource: ds,
	}

	if err := p.Start(ctx); err != nil {
		bootstrap.GracefulShutdown(context.Background(), components)
		return fmt.Errorf("failed to start planner: %w", err)
	}

	runCtx, stopPlanner := context.WithCancel(context.WithoutCancel(ctx))
	plannerDone := make(chan struct{})
	go func() {
		defer close(plannerDone)
		p.Run(runCtx)
	}()
	components.StopPlanner = stopPlanner
	components.PlannerDone = plannerDone

	deps := server.Deps{
		Planner:  p,
		Crafting: craftingService,
		Catalog:  ds.Backend.Catalog,
	}
	if ds.Pool != nil {
		deps.DBPool = ds.Pool
	}
	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, deps)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return err
}
