package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// UserStateRepository implements repository.UserState for PostgreSQL.
// Each write is a single atomic statement keyed by item id, so concurrent
// writers need no client-side locking.
type UserStateRepository struct {
	db *pgxpool.Pool
}

// NewUserStateRepository creates a new UserStateRepository
func NewUserStateRepository(db *pgxpool.Pool) *UserStateRepository {
	return &UserStateRepository{db: db}
}

// UpsertWishItem stores the requested quantity of a wish-list item
func (r *UserStateRepository) UpsertWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	query := `
		INSERT INTO user_items (item_id, quantity)
		VALUES ($1, $2)
		ON CONFLICT (item_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`
	if _, err := r.db.Exec(ctx, query, itemID, quantity); err != nil {
		return wrapErr(ErrMsgFailedToUpsertWishItem, err)
	}
	return nil
}

// DeleteWishItem removes a wish-list item
func (r *UserStateRepository) DeleteWishItem(ctx context.Context, itemID domain.ItemID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_items WHERE item_id = $1`, itemID); err != nil {
		return wrapErr(ErrMsgFailedToDeleteWishItem, err)
	}
	return nil
}

// UpsertInventory stores the held quantity of an ingredient
func (r *UserStateRepository) UpsertInventory(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	query := `
		INSERT INTO user_ingredients (item_id, quantity)
		VALUES ($1, $2)
		ON CONFLICT (item_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`
	if _, err := r.db.Exec(ctx, query, itemID, quantity); err != nil {
		return wrapErr(ErrMsgFailedToUpsertInventory, err)
	}
	return nil
}

// DeleteInventory removes a held ingredient
func (r *UserStateRepository) DeleteInventory(ctx context.Context, itemID domain.ItemID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_ingredients WHERE item_id = $1`, itemID); err != nil {
		return wrapErr(ErrMsgFailedToDeleteInventory, err)
	}
	return nil
}
