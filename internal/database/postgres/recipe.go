package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// RecipeRepository implements repository.RecipeSource for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// HasRecipe reports whether the item is the result of at least one recipe row
func (r *RecipeRepository) HasRecipe(ctx context.Context, itemID domain.ItemID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM recipes WHERE result_item_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, itemID).Scan(&exists); err != nil {
		return false, wrapErr(ErrMsgFailedToCheckRecipe, err)
	}
	return exists, nil
}

// GetRecipe returns one level of the item's recipe, each ingredient multiplied by quantity
func (r *RecipeRepository) GetRecipe(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) (domain.ItemList, error) {
	query := `
		SELECT ingredient_item_id, quantity
		FROM recipes
		WHERE result_item_id = $1
		ORDER BY ingredient_item_id
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToQueryRecipe, err)
	}
	defer rows.Close()

	out := make(domain.ItemList)
	for rows.Next() {
		var ingredient domain.ItemID
		var perCraft domain.Quantity
		if err := rows.Scan(&ingredient, &perCraft); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRecipe, err)
		}
		needed, err := domain.MulQuantity(perCraft, quantity)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", ErrMsgRecipeQuantityOverflow, itemID, err)
		}
		if err := out.Add(ingredient, needed); err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", ErrMsgRecipeQuantityOverflow, itemID, err)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgRowIteration, err)
	}

	return out, nil
}

// GetDropSources joins drops -> monsters -> monsters_sub_areas -> sub_areas -> areas.
// The inner joins drop links to monsters or sub-areas that do not exist.
func (r *RecipeRepository) GetDropSources(ctx context.Context, itemID domain.ItemID) ([]domain.DropSource, error) {
	query := `
		SELECT DISTINCT
			sa.id, sa.name, a.id, a.name,
			m.id, m.name
		FROM drops d
		JOIN monsters m ON m.id = d.monster_id
		JOIN monsters_sub_areas msa ON msa.monster_id = m.id
		JOIN sub_areas sa ON sa.id = msa.sub_area_id
		JOIN areas a ON a.id = sa.area_id
		WHERE d.item_id = $1
		ORDER BY m.id, sa.id
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToQueryDrops, err)
	}
	defer rows.Close()

	var sources []domain.DropSource
	for rows.Next() {
		var src domain.DropSource
		err := rows.Scan(
			&src.SubArea.ID,
			&src.SubArea.Name,
			&src.SubArea.Area.ID,
			&src.SubArea.Area.Name,
			&src.Monster.ID,
			&src.Monster.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanDrop, err)
		}
		sources = append(sources, src)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgRowIteration, err)
	}

	return sources, nil
}

// CountItems returns the number of items, used as the expansion depth bound
func (r *RecipeRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, wrapErr(ErrMsgFailedToCountItems, err)
	}
	return count, nil
}
