package repository

import (
	"context"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// Catalog gives access to item reference data
type Catalog interface {
	GetItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	GetItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error)
	// SearchItems matches the accent-folded text anywhere in the item name.
	SearchItems(ctx context.Context, text string, limit int) ([]domain.Item, error)
}
