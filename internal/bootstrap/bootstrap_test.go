package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/config"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/loader"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

const worldPath = "../loader/testdata/world.yaml"

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger(t *testing.T) {
	t.Run("Best Case: writes to stdout and the session file", func(t *testing.T) {
		restoreDefaultLogger(t)
		dir := t.TempDir()
		var stdout bytes.Buffer

		f, err := setupLogger(&config.Config{LogDir: dir, LogLevel: "info", LogFormat: "text", Environment: "test"}, &stdout, time.Now())
		require.NoError(t, err)
		defer f.Close()

		assert.Contains(t, stdout.String(), LogMsgStarting)
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgStarting)
	})

	t.Run("Edge Case: old session files are pruned", func(t *testing.T) {
		restoreDefaultLogger(t)
		dir := t.TempDir()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 12; i++ {
			name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Minute).Format(LogFileTimestampFormat))
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

		f, err := setupLogger(&config.Config{LogDir: dir}, &bytes.Buffer{}, base.Add(time.Hour))
		require.NoError(t, err)
		defer f.Close()

		logs, err := filepath.Glob(filepath.Join(dir, "*"+LogFileExtension))
		require.NoError(t, err)
		assert.Len(t, logs, LogFileRetentionCount+1)
		assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, base.Format(LogFileTimestampFormat))))
		assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	})

	t.Run("Error Case: log dir is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := setupLogger(&config.Config{LogDir: path}, &bytes.Buffer{}, time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedCreateLogsDir)
	})
}

func TestInitializeDeadLetter(t *testing.T) {
	t.Run("Best Case: creates the directory and file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dead.jsonl")

		w, err := InitializeDeadLetter(&config.Config{DeadLetterPath: path})
		require.NoError(t, err)
		require.NotNil(t, w)
		defer w.Close()
		assert.FileExists(t, path)
	})

	t.Run("Edge Case: empty path disables", func(t *testing.T) {
		w, err := InitializeDeadLetter(&config.Config{})
		assert.NoError(t, err)
		assert.Nil(t, w)
	})
}

func TestInitializeDataSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: snapshot source needs no database", func(t *testing.T) {
		ds, err := InitializeDataSource(ctx, &config.Config{DataSource: config.DataSourceSnapshot, SnapshotPath: worldPath})
		require.NoError(t, err)
		defer ds.Close()

		assert.Nil(t, ds.Pool)
		assert.Equal(t, loader.KindSnapshot, ds.Backend.Kind)
		item, err := ds.Backend.Catalog.GetItemByID(ctx, domain.FixtureItemTest1)
		require.NoError(t, err)
		assert.Equal(t, "test1", item.Name)
	})

	t.Run("Error Case: missing snapshot file", func(t *testing.T) {
		_, err := InitializeDataSource(ctx, &config.Config{DataSource: config.DataSourceSnapshot, SnapshotPath: "nope.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedOpenDataSource)
	})

	t.Run("Error Case: unreachable database", func(t *testing.T) {
		if testing.Short() {
			t.Skip("dials a closed port")
		}
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		_, err := InitializeDataSource(cctx, &config.Config{
			DataSource: config.DataSourcePostgres,
			DBUser:     "u", DBPassword: "p", DBHost: "127.0.0.1", DBPort: "1", DBName: "db",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDataSourceUnavailable))
	})
}

func TestGracefulShutdown(t *testing.T) {
	t.Run("Edge Case: nil components", func(t *testing.T) {
		assert.NotPanics(t, func() { GracefulShutdown(context.Background(), ShutdownComponents{}) })
	})

	t.Run("Best Case: cancels the loop and waits for it", func(t *testing.T) {
		pool := worker.NewPool(1, 1)
		pool.Start(context.Background())

		runCtx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			<-runCtx.Done()
			close(done)
		}()

		GracefulShutdown(context.Background(), ShutdownComponents{StopPlanner: cancel, PlannerDone: done, Pool: pool})

		select {
		case <-done:
		default:
			t.Fatal("planner loop still running")
		}
		assert.ErrorIs(t, pool.TryEnqueue(worker.JobFunc(func(context.Context) error { return nil })), worker.ErrPoolStopped)
	})

	t.Run("Edge Case: deadline bounds the wait", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		GracefulShutdown(ctx, ShutdownComponents{PlannerDone: make(chan struct{})})
		assert.Less(t, time.Since(start), time.Second)
	})
}
