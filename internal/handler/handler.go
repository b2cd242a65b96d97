package handler

import (
	"context"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
)

// PlannerService is the part of the planner the HTTP API drives. Mutations are
// queued to the planner loop; reads come from its latest snapshot.
type PlannerService interface {
	AddWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error
	RemoveWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, crafted bool) error
	AdjustInventory(ctx context.Context, itemID domain.ItemID, delta int32) error
	Search(ctx context.Context, text string) error
	CalculatedInventory(ctx context.Context) (*domain.RecipeExpansion, error)
	Snapshot() *planner.Snapshot
}

// ItemAmount is a quantity of an item in API responses
type ItemAmount = planner.ItemAmount
