package domain

// RecipeEdge is one line of a recipe: crafting Result consumes Quantity of Ingredient.
// An item that is never a Result is a base ingredient.
type RecipeEdge struct {
	ResultItemID     ItemID   `json:"result_item_id" yaml:"result_item_id"`
	IngredientItemID ItemID   `json:"ingredient_item_id" yaml:"ingredient_item_id"`
	Quantity         Quantity `json:"quantity" yaml:"quantity"`
}

// RecipeExpansion is the full bill of materials of an item.
// Steps[0] holds the intermediates closest to the base ingredients and the last
// step holds those closest to the finished item. The root itself is never a step.
type RecipeExpansion struct {
	BaseIngredients ItemList   `json:"base_ingredients"`
	Steps           []ItemList `json:"steps"`
}

// Scale multiplies every quantity of the expansion by factor.
func (e *RecipeExpansion) Scale(factor Quantity) (*RecipeExpansion, error) {
	base, err := e.BaseIngredients.Scale(factor)
	if err != nil {
		return nil, err
	}
	steps := make([]ItemList, 0, len(e.Steps))
	for _, step := range e.Steps {
		scaled, err := step.Scale(factor)
		if err != nil {
			return nil, err
		}
		steps = append(steps, scaled)
	}
	return &RecipeExpansion{BaseIngredients: base, Steps: steps}, nil
}

// IngredientNeed is a base ingredient of a resolved wish-list entry together with
// the monsters that drop it.
type IngredientNeed struct {
	Item     Item             `json:"item"`
	Quantity Quantity         `json:"quantity"`
	Sources  []MonsterSources `json:"sources"`
}
