package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/crafting"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/loader"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

const worldPath = "../loader/testdata/world.yaml"

// newTestRouter wires the router to a running planner over the YAML world
func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	world, err := loader.LoadSnapshot(ctx, worldPath)
	require.NoError(t, err)

	pool := worker.NewPool(2, 64)
	pool.Start(ctx)

	svc := crafting.NewService(world, world, crafting.Config{})
	p := planner.New(planner.Deps{
		Crafting:      svc,
		Catalog:       world,
		State:         world,
		Loader:        world,
		Pool:          pool,
		FrameInterval: 5 * time.Millisecond,
	})
	require.NoError(t, p.Start(ctx))

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		p.Stop()
		pool.Stop()
	})

	return NewRouter(Config{APIKey: apiKey}, Deps{
		Planner:  p,
		Crafting: svc,
		Catalog:  world,
	})
}

func do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthChecks(t *testing.T) {
	h := newTestRouter(t, "")

	t.Run("Best Case: healthz", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", nil).Code)
	})

	t.Run("Best Case: readyz without a database", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/readyz", nil).Code)
	})

	t.Run("Best Case: version", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/version", nil).Code)
	})

	t.Run("Edge Case: unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/v1/nope", nil).Code)
	})
}

func TestRouter_Auth(t *testing.T) {
	h := newTestRouter(t, "k")

	t.Run("Error Case: api route without key", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/v1/state", nil).Code)
	})

	t.Run("Best Case: api route with key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
		req.Header.Set(HeaderAPIKey, "k")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Edge Case: health checks stay public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", nil).Code)
	})
}

func TestRouter_WishListFlow(t *testing.T) {
	h := newTestRouter(t, "")

	t.Run("Best Case: added item resolves", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/wishlist", map[string]any{
			"item_id":  domain.FixtureItemTest2,
			"quantity": 4,
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		require.Eventually(t, func() bool {
			var state planner.Snapshot
			rec := do(h, http.MethodGet, "/api/v1/state", nil)
			if rec.Code != http.StatusOK || json.Unmarshal(rec.Body.Bytes(), &state) != nil {
				return false
			}
			for _, e := range state.WishList {
				if e.Item.ID == domain.FixtureItemTest2 && e.Status == domain.StatusReady {
					return e.Quantity == 4
				}
			}
			return false
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Error Case: unknown item", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/wishlist", map[string]any{"item_id": 424242, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error Case: removing an item not on the list", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/wishlist/remove", map[string]any{
			"item_id":  domain.FixtureItemTest3,
			"quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_ItemRoutes(t *testing.T) {
	h := newTestRouter(t, "")

	t.Run("Best Case: expansion of a crafted item", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/items/69696971/expansion?quantity=2", nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "test1")
	})

	t.Run("Best Case: sources of a dropped item", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/items/69696969/sources", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Gobball")
	})

	t.Run("Error Case: malformed id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/v1/items/abc/sources", nil).Code)
	})
}

func TestRouter_Search(t *testing.T) {
	h := newTestRouter(t, "")

	t.Run("Best Case: results arrive after the search is queued", func(t *testing.T) {
		require.Equal(t, http.StatusAccepted, do(h, http.MethodGet, "/api/v1/items/search?q=epee", nil).Code)

		require.Eventually(t, func() bool {
			var results planner.SearchResults
			rec := do(h, http.MethodGet, "/api/v1/search/results", nil)
			if json.Unmarshal(rec.Body.Bytes(), &results) != nil {
				return false
			}
			return results.Text == "epee" && !results.Pending && len(results.Items) > 0
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Error Case: missing query", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/api/v1/items/search", nil).Code)
	})
}
