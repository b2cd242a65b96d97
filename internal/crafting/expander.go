package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// ExpandFullRecipe walks the recipe graph breadth-first, one depth level per round.
// Items without a recipe accumulate into the base ingredients; every crafted item
// is recorded in the step of the round it was reached in.
func (s *service) ExpandFullRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (*domain.RecipeExpansion, error) {
	log := logger.FromContext(ctx)

	if err := s.validateQuantity(quantity); err != nil {
		return nil, err
	}

	bound, err := s.depthBound(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgExpandingRecipe, "item_id", itemID, "quantity", quantity, "depth_bound", bound)

	base := domain.ItemList{}
	var steps []domain.ItemList
	frontier := domain.ItemList{itemID: quantity}

	for !frontier.IsEmpty() {
		if len(steps) >= bound {
			log.Warn(LogMsgCyclicRecipeAborted, "item_id", itemID, "rounds", len(steps))
			return nil, fmt.Errorf(ErrMsgDepthBoundExceeded+": %w", itemID, bound, domain.ErrCyclicRecipe)
		}

		step := domain.ItemList{}
		next := domain.ItemList{}
		for _, id := range frontier.IDs() {
			qty := frontier[id]

			hasRecipe, err := s.source.HasRecipe(ctx, id)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgFailedToCheckRecipe+": %w", id, err)
			}
			if !hasRecipe {
				if err := base.Add(id, qty); err != nil {
					return nil, err
				}
				continue
			}

			if err := step.Add(id, qty); err != nil {
				return nil, err
			}
			recipe, err := s.source.GetRecipe(ctx, id, qty)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgFailedToGetRecipe+": %w", id, err)
			}
			if err := next.Merge(recipe); err != nil {
				return nil, err
			}
		}
		steps = append(steps, step)
		frontier = next
	}

	steps = trimSteps(steps)

	log.Debug(LogMsgRecipeExpanded, "item_id", itemID, "base_ingredients", len(base), "steps", len(steps))
	return &domain.RecipeExpansion{BaseIngredients: base, Steps: steps}, nil
}

// trimSteps drops the root level and the trailing empty level, then orders the
// remaining levels from closest-to-base to closest-to-root.
func trimSteps(steps []domain.ItemList) []domain.ItemList {
	if len(steps) == 0 {
		return []domain.ItemList{}
	}
	steps = steps[1:]
	if n := len(steps); n > 0 && steps[n-1].IsEmpty() {
		steps = steps[:n-1]
	}
	out := make([]domain.ItemList, len(steps))
	for i, step := range steps {
		out[len(steps)-1-i] = step
	}
	return out
}
