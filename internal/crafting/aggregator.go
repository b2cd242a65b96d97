package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// Demand is one resolved wish-list entry: what a single unit needs, and how many units are wanted.
type Demand struct {
	PerUnit  domain.ItemList
	Quantity domain.Quantity
}

// TotalDemand sums every demand weighted by its requested quantity.
func TotalDemand(demands []Demand) (domain.ItemList, error) {
	total := domain.ItemList{}
	for _, d := range demands {
		scaled, err := d.PerUnit.Scale(d.Quantity)
		if err != nil {
			return nil, err
		}
		if err := total.Merge(scaled); err != nil {
			return nil, err
		}
	}
	return total, nil
}

// Shortfall returns, per ingredient, the demanded quantity minus what is held.
// Ingredients that are fully covered are absent from the result.
func Shortfall(demands []Demand, inventory domain.ItemList) (domain.ItemList, error) {
	total, err := TotalDemand(demands)
	if err != nil {
		return nil, err
	}
	out := domain.ItemList{}
	for _, id := range total.IDs() {
		missing := int32(total[id]) - int32(inventory.Get(id))
		if missing > 0 {
			out.Set(id, domain.Quantity(missing))
		}
	}
	return out, nil
}

// workItem is a pending (ingredient, quantity) pair of the live craft walk.
type workItem struct {
	id     domain.ItemID
	needed domain.Quantity
	depth  int
}

// CraftDecrement consumes the recipe of quantity units of the item from inventory,
// depth first. Each ingredient takes min(held, needed); only a remaining shortfall
// descends into that ingredient's own recipe.
func (s *service) CraftDecrement(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, inventory domain.ItemList) (domain.ItemList, error) {
	if err := s.validateQuantity(quantity); err != nil {
		return nil, err
	}
	bound, err := s.depthBound(ctx)
	if err != nil {
		return nil, err
	}

	held := inventory.Clone()
	consumed := domain.ItemList{}

	recipe, err := s.source.GetRecipe(ctx, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetRecipe+": %w", itemID, err)
	}
	stack := pushRecipe(nil, recipe, 1)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		take := min(held.Get(top.id), top.needed)
		if take > 0 {
			held.Set(top.id, held.Get(top.id)-take)
			if err := consumed.Add(top.id, take); err != nil {
				return nil, err
			}
		}

		remaining := top.needed - take
		if remaining == 0 {
			continue
		}
		hasRecipe, err := s.source.HasRecipe(ctx, top.id)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToCheckRecipe+": %w", top.id, err)
		}
		if !hasRecipe {
			continue
		}
		if top.depth >= bound {
			return nil, fmt.Errorf(ErrMsgDepthBoundExceeded+": %w", itemID, bound, domain.ErrCyclicRecipe)
		}
		sub, err := s.source.GetRecipe(ctx, top.id, remaining)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToGetRecipe+": %w", top.id, err)
		}
		stack = pushRecipe(stack, sub, top.depth+1)
	}

	logger.FromContext(ctx).Debug(LogMsgCraftDecrementDone,
		"item_id", itemID, "quantity", quantity, "consumed", len(consumed))
	return consumed, nil
}

// pushRecipe pushes entries in descending id order so they pop in ascending order.
func pushRecipe(stack []workItem, recipe domain.ItemList, depth int) []workItem {
	ids := recipe.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		stack = append(stack, workItem{id: ids[i], needed: recipe[ids[i]], depth: depth})
	}
	return stack
}

// CalculatedInventory folds the expansion of every held item into one picture.
// Steps are aligned from the base side: step 0 of each expansion merges into step 0.
func (s *service) CalculatedInventory(ctx context.Context, inventory domain.ItemList) (*domain.RecipeExpansion, error) {
	out := &domain.RecipeExpansion{BaseIngredients: domain.ItemList{}, Steps: []domain.ItemList{}}

	for _, id := range inventory.IDs() {
		qty := inventory[id]
		hasRecipe, err := s.source.HasRecipe(ctx, id)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToCheckRecipe+": %w", id, err)
		}
		if !hasRecipe {
			if err := out.BaseIngredients.Add(id, qty); err != nil {
				return nil, err
			}
			continue
		}

		exp, err := s.ExpandFullRecipe(ctx, id, qty)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToExpandInventory+": %w", id, err)
		}
		if err := out.BaseIngredients.Merge(exp.BaseIngredients); err != nil {
			return nil, err
		}
		for i, step := range exp.Steps {
			if i == len(out.Steps) {
				out.Steps = append(out.Steps, domain.ItemList{})
			}
			if err := out.Steps[i].Merge(step); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
