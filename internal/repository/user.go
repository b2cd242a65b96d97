package repository

import (
	"context"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// UserState persists the wish list and the held ingredients.
// Quantities of zero are never stored: callers delete instead of upserting 0.
type UserState interface {
	UpsertWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error
	DeleteWishItem(ctx context.Context, itemID domain.ItemID) error
	UpsertInventory(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error
	DeleteInventory(ctx context.Context, itemID domain.ItemID) error
}

// DataLoader loads the startup data of the planner.
type DataLoader interface {
	// LoadAllSubAreas returns every sub-area that owns at least one map tile.
	LoadAllSubAreas(ctx context.Context) ([]domain.SubAreaMaps, error)
	// LoadInitialState returns the held ingredients and the persisted wish list.
	LoadInitialState(ctx context.Context) (*domain.InitialState, error)
}
