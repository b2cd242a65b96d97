package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

func TestShortfall(t *testing.T) {
	t.Run("Best Case: wish list of two test4 against held test1", func(t *testing.T) {
		svc := newTestService(newFixtureSource())
		exp, err := svc.ExpandFullRecipe(context.Background(), test4, 1)
		require.NoError(t, err)

		got, err := Shortfall([]Demand{{PerUnit: exp.BaseIngredients, Quantity: 2}}, domain.ItemList{test1: 500})

		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test1: 1500}, got)
	})

	t.Run("Best Case: demands for the same ingredient add up", func(t *testing.T) {
		demands := []Demand{
			{PerUnit: domain.ItemList{1: 3, 2: 1}, Quantity: 2},
			{PerUnit: domain.ItemList{1: 4}, Quantity: 1},
		}

		got, err := Shortfall(demands, domain.ItemList{2: 1})

		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{1: 10, 2: 1}, got)
	})

	t.Run("Edge Case: covered ingredients are dropped", func(t *testing.T) {
		got, err := Shortfall([]Demand{{PerUnit: domain.ItemList{1: 5}, Quantity: 1}}, domain.ItemList{1: 9})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Edge Case: empty wish list", func(t *testing.T) {
		got, err := Shortfall(nil, domain.ItemList{1: 9})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Error Case: overflow", func(t *testing.T) {
		_, err := Shortfall([]Demand{{PerUnit: domain.ItemList{1: 1000}, Quantity: 100}}, nil)

		assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
	})
}

func TestCraftDecrement(t *testing.T) {
	t.Run("Best Case: descends into deeper levels for the remaining shortfall", func(t *testing.T) {
		svc := newTestService(newFixtureSource())
		inventory := domain.ItemList{test3: 5, test1: 10000}

		consumed, err := svc.CraftDecrement(context.Background(), test4, 1, inventory)

		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test3: 5, test1: 500}, consumed)
		assert.Equal(t, domain.ItemList{test3: 5, test1: 10000}, inventory, "input must not be modified")
	})

	t.Run("Best Case: stops descending once a level is covered", func(t *testing.T) {
		src := newFixtureSource()
		svc := newTestService(src)

		consumed, err := svc.CraftDecrement(context.Background(), test4, 1, domain.ItemList{test3: 20, test1: 10000})

		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test3: 10}, consumed)
		assert.Equal(t, 1, src.recipeCalls)
	})

	t.Run("Edge Case: nothing held consumes nothing", func(t *testing.T) {
		consumed, err := newTestService(newFixtureSource()).CraftDecrement(context.Background(), test4, 2, domain.ItemList{})

		require.NoError(t, err)
		assert.Empty(t, consumed)
	})

	t.Run("Edge Case: partial holdings at every level", func(t *testing.T) {
		inventory := domain.ItemList{test3: 4, test2: 30, test1: 100}

		consumed, err := newTestService(newFixtureSource()).CraftDecrement(context.Background(), test4, 1, inventory)

		// test3: 4 of 10 -> 6 short -> test2: 30 of 60 -> 30 short -> test1: 100 of 300
		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test3: 4, test2: 30, test1: 100}, consumed)
	})

	t.Run("Edge Case: base item has nothing to consume", func(t *testing.T) {
		consumed, err := newTestService(newFixtureSource()).CraftDecrement(context.Background(), test1, 1, domain.ItemList{test1: 5})

		require.NoError(t, err)
		assert.Empty(t, consumed)
	})

	t.Run("Error Case: cyclic recipe", func(t *testing.T) {
		src := NewMockSource()
		src.AddItem(1, "a")
		src.AddItem(2, "b")
		src.AddRecipe(1, 2, 1)
		src.AddRecipe(2, 1, 1)

		_, err := newTestService(src).CraftDecrement(context.Background(), 1, 1, domain.ItemList{})

		assert.ErrorIs(t, err, domain.ErrCyclicRecipe)
	})

	t.Run("Error Case: invalid quantity", func(t *testing.T) {
		_, err := newTestService(newFixtureSource()).CraftDecrement(context.Background(), test4, -1, domain.ItemList{})

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}

func TestCalculatedInventory(t *testing.T) {
	t.Run("Best Case: crafted and base items fold together", func(t *testing.T) {
		svc := newTestService(newFixtureSource())
		inventory := domain.ItemList{test4: 1, test3: 2, test1: 5}

		got, err := svc.CalculatedInventory(context.Background(), inventory)

		require.NoError(t, err)
		assert.Equal(t, domain.ItemList{test1: 1205}, got.BaseIngredients)
		// test4 contributes [{test2:100},{test3:10}], test3 contributes [{test2:20}]
		assert.Equal(t, []domain.ItemList{{test2: 120}, {test3: 10}}, got.Steps)
	})

	t.Run("Edge Case: empty inventory", func(t *testing.T) {
		got, err := newTestService(newFixtureSource()).CalculatedInventory(context.Background(), domain.ItemList{})

		require.NoError(t, err)
		assert.Empty(t, got.BaseIngredients)
		assert.Empty(t, got.Steps)
	})
}
