package postgres

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

const (
	test1 = domain.FixtureItemTest1
	test2 = domain.FixtureItemTest2
	test3 = domain.FixtureItemTest3
	test4 = domain.FixtureItemTest4
)

func TestRepositories_Integration(t *testing.T) {
	pool := setupTestDB(t)
	seedWorld(t, pool)
	ctx := context.Background()

	recipes := NewRecipeRepository(pool)
	items := NewItemRepository(pool)
	state := NewUserStateRepository(pool)
	loader := NewLoaderRepository(pool)

	t.Run("HasRecipe", func(t *testing.T) {
		has, err := recipes.HasRecipe(ctx, test4)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = recipes.HasRecipe(ctx, test1)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("GetRecipe multiplies by quantity", func(t *testing.T) {
		got, err := recipes.GetRecipe(ctx, test4, 3)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test3: 30}, got)
	})

	t.Run("GetRecipe overflow", func(t *testing.T) {
		_, err := recipes.GetRecipe(ctx, test4, domain.MaxQuantity)
		assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
	})

	t.Run("GetDropSources", func(t *testing.T) {
		sources, err := recipes.GetDropSources(ctx, test1)
		require.NoError(t, err)
		require.Len(t, sources, 3)
		assert.Equal(t, domain.MonsterID(1), sources[0].Monster.ID)
		assert.Equal(t, domain.SubAreaID(10), sources[0].SubArea.ID)
		assert.Equal(t, "Amakna", sources[0].SubArea.Area.Name)
	})

	t.Run("CountItems", func(t *testing.T) {
		n, err := recipes.CountItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("GetItemByID", func(t *testing.T) {
		item, err := items.GetItemByID(ctx, test2)
		require.NoError(t, err)
		assert.Equal(t, "test2", item.Name)

		_, err = items.GetItemByID(ctx, 424242)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("GetItemsByIDs skips unknown", func(t *testing.T) {
		got, err := items.GetItemsByIDs(ctx, []domain.ItemID{test1, test3, 424242})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "test1", got[0].Name)
	})

	t.Run("SearchItems is accent-insensitive and filtered", func(t *testing.T) {
		got, err := items.SearchItems(ctx, "epee", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.ItemID(1), got[0].ID)
	})

	t.Run("LoadAllSubAreas drops empty sub-areas", func(t *testing.T) {
		got, err := loader.LoadAllSubAreas(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.SubAreaID(10), got[0].SubArea.ID)
		assert.Len(t, got[0].Maps, 2)
		require.NotNil(t, got[0].Maps[0].Name)
		assert.Equal(t, "Gate", *got[0].Maps[0].Name)
		assert.Nil(t, got[0].Maps[1].Name)
		assert.Len(t, got[1].Maps, 1)
	})

	t.Run("UserState upsert and delete round trip", func(t *testing.T) {
		require.NoError(t, state.UpsertWishItem(ctx, test4, 2))
		require.NoError(t, state.UpsertWishItem(ctx, test4, 3))
		require.NoError(t, state.UpsertInventory(ctx, test1, 500))
		require.NoError(t, state.UpsertInventory(ctx, test2, 7))
		require.NoError(t, state.DeleteInventory(ctx, test2))

		initial, err := loader.LoadInitialState(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test1: 500}, initial.Inventory)
		require.Len(t, initial.WishList, 1)
		assert.Equal(t, domain.Quantity(3), initial.WishList[0].Quantity)
		assert.Equal(t, "test4", initial.WishList[0].Item.Name)
		assert.Len(t, initial.Items, 2)

		require.NoError(t, state.DeleteWishItem(ctx, test4))
		initial, err = loader.LoadInitialState(ctx)
		require.NoError(t, err)
		assert.Empty(t, initial.WishList)
	})
}

func TestWrapErr(t *testing.T) {
	t.Run("Error Case: network failure is unavailable", func(t *testing.T) {
		err := wrapErr("op", &net.OpError{Op: "dial", Err: errors.New("refused")})
		assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	})

	t.Run("Edge Case: plain failure is not unavailable", func(t *testing.T) {
		err := wrapErr("op", errors.New("syntax error"))
		assert.NotErrorIs(t, err, domain.ErrDataSourceUnavailable)
		assert.Contains(t, err.Error(), "op")
	})
}
