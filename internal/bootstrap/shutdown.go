package bootstrap

import (
	"context"

	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
	"github.com/osse101/FarmPlanner_Go/internal/server"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Planner *planner.Planner
	// StopPlanner cancels the planner's Run context
	StopPlanner context.CancelFunc
	// PlannerDone is closed when Run has returned
	PlannerDone <-chan struct{}
	Pool        *worker.Pool
	DeadLetter  *event.DeadLetterWriter
	DataSource  *DataSource
}

// GracefulShutdown stops the components in dependency order:
//  1. HTTP server, so no new mutations arrive
//  2. planner loop, which drains its inbox and flushes pending writes
//  3. worker pool, then the dead-letter file and the database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	logger.Info(LogMsgStoppingPlanner)
	if c.StopPlanner != nil {
		c.StopPlanner()
	}
	if c.PlannerDone != nil {
		select {
		case <-c.PlannerDone:
		case <-ctx.Done():
			logger.Warn(LogMsgPlannerStopTimedOut)
		}
	}
	if c.Planner != nil {
		c.Planner.Stop()
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.DeadLetter != nil {
		if err := c.DeadLetter.Close(); err != nil {
			logger.Error(LogMsgDeadLetterCloseFail, "error", err)
		}
	}
	if c.DataSource != nil {
		c.DataSource.Close()
	}

	logger.Info(LogMsgServerStopped)
}
