package crafting

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// Service defines the recipe resolution operations
type Service interface {
	// ExpandFullRecipe returns the base ingredients and the ordered crafting steps
	// needed to make quantity units of the item.
	ExpandFullRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (*domain.RecipeExpansion, error)
	// LocateSources returns the monsters dropping the item and the sub-areas they live in.
	LocateSources(ctx context.Context, itemID domain.ItemID) ([]domain.MonsterSources, error)
	// ResolveWishItem expands one unit of the item and locates every base ingredient.
	ResolveWishItem(ctx context.Context, itemID domain.ItemID) (*domain.Resolution, []domain.Item, error)
	// CraftDecrement walks the recipe of the crafted item live and returns what
	// it consumes from inventory. Inventory is not modified.
	CraftDecrement(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, inventory domain.ItemList) (domain.ItemList, error)
	// CalculatedInventory breaks every held item down into base materials.
	CalculatedInventory(ctx context.Context, inventory domain.ItemList) (*domain.RecipeExpansion, error)
	// PurgeSources drops every cached source lookup.
	PurgeSources()
}

// Config tunes the source cache
type Config struct {
	SourceCacheSize int
	SourceCacheTTL  time.Duration
}

type service struct {
	source   repository.RecipeSource
	catalog  repository.Catalog
	sources  *sourceCache
	inflight singleflight.Group
}

// NewService creates a new crafting service
func NewService(source repository.RecipeSource, catalog repository.Catalog, cfg Config) Service {
	if cfg.SourceCacheSize <= 0 {
		cfg.SourceCacheSize = DefaultSourceCacheSize
	}
	if cfg.SourceCacheTTL <= 0 {
		cfg.SourceCacheTTL = DefaultSourceCacheTTL
	}
	return &service{
		source:  source,
		catalog: catalog,
		sources: newSourceCache(cfg.SourceCacheSize, cfg.SourceCacheTTL),
	}
}

func (s *service) validateQuantity(quantity domain.Quantity) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgQuantityMustBePositive+": %w", quantity, domain.ErrInvalidQuantity)
	}
	return nil
}

// depthBound is the maximum number of expansion rounds. An acyclic recipe graph
// cannot be deeper than the number of distinct items.
func (s *service) depthBound(ctx context.Context) (int, error) {
	n, err := s.source.CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountItems, err)
	}
	if n < MinDepthBound {
		n = MinDepthBound
	}
	return n, nil
}

// ResolveWishItem expands one unit of the item and attaches sources to every base ingredient.
// The returned items are the records of every id the resolution references.
func (s *service) ResolveWishItem(ctx context.Context, itemID domain.ItemID) (*domain.Resolution, []domain.Item, error) {
	exp, err := s.ExpandFullRecipe(ctx, itemID, ResolveQuantity)
	if err != nil {
		return nil, nil, err
	}

	ids := exp.BaseIngredients.IDs()
	for _, step := range exp.Steps {
		ids = append(ids, step.IDs()...)
	}
	items, err := s.catalog.GetItemsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
	}
	arena := domain.ItemArena{}
	arena.Put(items...)

	res := &domain.Resolution{
		Ingredients: make(map[domain.ItemID]domain.IngredientNeed, len(exp.BaseIngredients)),
		Steps:       exp.Steps,
	}
	for _, id := range exp.BaseIngredients.IDs() {
		sources, err := s.LocateSources(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgFailedToLocateSources+": %w", id, err)
		}
		res.Ingredients[id] = domain.IngredientNeed{
			Item:     arena.Lookup(id),
			Quantity: exp.BaseIngredients[id],
			Sources:  sources,
		}
	}
	return res, items, nil
}

func (s *service) PurgeSources() {
	s.sources.Clear()
}
