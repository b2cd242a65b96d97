package crafting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

var (
	forest   = domain.SubArea{ID: 10, Name: "Forest", Area: domain.Area{ID: 1, Name: "Wild"}}
	swamp    = domain.SubArea{ID: 11, Name: "Swamp", Area: domain.Area{ID: 1, Name: "Wild"}}
	boar     = domain.Monster{ID: 100, Name: "Boar"}
	arachnee = domain.Monster{ID: 101, Name: "Arachnee"}
)

func TestLocateSources(t *testing.T) {
	t.Run("Best Case: two monsters sharing a sub-area keep one copy each", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		src.AddDrop(test1, boar, forest)
		src.AddDrop(test1, boar, domain.SubArea{ID: forest.ID, Name: "stale name"})
		src.AddDrop(test1, arachnee, forest)
		src.AddDrop(test1, arachnee, swamp)

		got, err := newTestService(src).LocateSources(context.Background(), test1)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, arachnee, got[0].Monster)
		assert.Equal(t, []domain.SubArea{forest, swamp}, got[0].SubAreas)
		assert.Equal(t, boar, got[1].Monster)
		assert.Equal(t, []domain.SubArea{forest}, got[1].SubAreas)
	})

	t.Run("Best Case: second lookup is served from cache", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		svc := newTestService(src)

		_, err := svc.LocateSources(context.Background(), test1)
		require.NoError(t, err)
		_, err = svc.LocateSources(context.Background(), test1)
		require.NoError(t, err)

		assert.Equal(t, 1, src.DropCalls(test1))
	})

	t.Run("Best Case: purge forces a new lookup", func(t *testing.T) {
		src := newFixtureSource()
		svc := newTestService(src)

		_, _ = svc.LocateSources(context.Background(), test1)
		svc.PurgeSources()
		_, _ = svc.LocateSources(context.Background(), test1)

		assert.Equal(t, 2, src.DropCalls(test1))
	})

	t.Run("Edge Case: item without drops", func(t *testing.T) {
		got, err := newTestService(newFixtureSource()).LocateSources(context.Background(), test1)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Edge Case: concurrent lookups", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		svc := newTestService(src)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := svc.LocateSources(context.Background(), test1)
				assert.NoError(t, err)
				assert.Len(t, got, 1)
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, src.DropCalls(test1), 20)
		assert.GreaterOrEqual(t, src.DropCalls(test1), 1)
	})

	t.Run("Edge Case: returned sources do not alias the cache", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		src.AddDrop(test1, boar, swamp)
		svc := newTestService(src)

		first, err := svc.LocateSources(context.Background(), test1)
		require.NoError(t, err)
		first[0].SubAreas[0] = domain.SubArea{ID: 999, Name: "overwritten"}
		first[0].Monster.Name = "overwritten"

		second, err := svc.LocateSources(context.Background(), test1)
		require.NoError(t, err)
		assert.Equal(t, 1, src.DropCalls(test1))
		assert.Equal(t, boar, second[0].Monster)
		assert.Equal(t, []domain.SubArea{forest, swamp}, second[0].SubAreas)
	})

	t.Run("Edge Case: a cancelled caller does not fail the callers sharing its query", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		src.dropsGate = make(chan struct{})
		svc := newTestService(src)

		cancelCtx, cancel := context.WithCancel(context.Background())
		first := make(chan error, 1)
		go func() {
			_, err := svc.LocateSources(cancelCtx, test1)
			first <- err
		}()
		require.Eventually(t, func() bool { return src.DropCalls(test1) == 1 }, time.Second, time.Millisecond)

		type result struct {
			sources []domain.MonsterSources
			err     error
		}
		second := make(chan result, 1)
		go func() {
			got, err := svc.LocateSources(context.Background(), test1)
			second <- result{got, err}
		}()

		cancel()
		select {
		case err := <-first:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("cancelled caller kept waiting on the shared query")
		}

		close(src.dropsGate)
		select {
		case res := <-second:
			require.NoError(t, res.err)
			assert.Len(t, res.sources, 1)
		case <-time.After(time.Second):
			t.Fatal("second caller never received the shared result")
		}
		assert.Equal(t, 1, src.DropCalls(test1))
	})

	t.Run("Error Case: failures are not cached", func(t *testing.T) {
		src := newFixtureSource()
		src.dropsError = domain.ErrDataSourceUnavailable
		svc := newTestService(src)

		_, err := svc.LocateSources(context.Background(), test1)
		assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)

		src.dropsError = nil
		_, err = svc.LocateSources(context.Background(), test1)
		assert.NoError(t, err)
		assert.Equal(t, 2, src.DropCalls(test1))
	})
}

func TestResolveWishItem(t *testing.T) {
	t.Run("Best Case: per-unit ingredients with sources", func(t *testing.T) {
		src := newFixtureSource()
		src.AddDrop(test1, boar, forest)
		svc := newTestService(src)

		res, items, err := svc.ResolveWishItem(context.Background(), test4)

		require.NoError(t, err)
		require.Contains(t, res.Ingredients, test1)
		need := res.Ingredients[test1]
		assert.Equal(t, "test1", need.Item.Name)
		assert.Equal(t, domain.Quantity(1000), need.Quantity)
		assert.Equal(t, []domain.MonsterSources{{Monster: boar, SubAreas: []domain.SubArea{forest}}}, need.Sources)
		assert.Equal(t, []domain.ItemList{{test2: 100}, {test3: 10}}, res.Steps)
		assert.Len(t, items, 3)
	})

	t.Run("Best Case: shared ingredient is located once across items", func(t *testing.T) {
		src := newFixtureSource()
		svc := newTestService(src)

		_, _, err := svc.ResolveWishItem(context.Background(), test4)
		require.NoError(t, err)
		_, _, err = svc.ResolveWishItem(context.Background(), test3)
		require.NoError(t, err)

		assert.Equal(t, 1, src.DropCalls(test1))
	})

	t.Run("Error Case: cyclic recipe", func(t *testing.T) {
		src := NewMockSource()
		src.AddItem(1, "a")
		src.AddRecipe(1, 1, 1)

		_, _, err := newTestService(src).ResolveWishItem(context.Background(), 1)

		assert.ErrorIs(t, err, domain.ErrCyclicRecipe)
	})
}
