package repository

import (
	"context"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// RecipeSource is the read interface over recipes and drops used by the crafting engine.
type RecipeSource interface {
	// HasRecipe reports whether the item is crafted from other items.
	HasRecipe(ctx context.Context, itemID domain.ItemID) (bool, error)
	// GetRecipe expands one level of the item's recipe with quantities pre-multiplied.
	GetRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (domain.ItemList, error)
	// GetDropSources returns the deduplicated drop -> monster -> sub-area join for the item.
	GetDropSources(ctx context.Context, itemID domain.ItemID) ([]domain.DropSource, error)
	// CountItems bounds recipe depth: an acyclic graph never needs more expansion rounds.
	CountItems(ctx context.Context) (int, error)
}
