package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// ItemRepository implements repository.Catalog for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetItemByID retrieves a single item
func (r *ItemRepository) GetItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	query := `SELECT id, name, category, image_id FROM items WHERE id = $1`

	var item domain.Item
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Category, &item.ImageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return &item, nil
}

// GetItemsByIDs retrieves the items with the given ids. Unknown ids are skipped.
func (r *ItemRepository) GetItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, category, image_id
		FROM items
		WHERE id = ANY($1)
		ORDER BY name, id
	`

	rows, err := r.db.Query(ctx, query, itemIDs(ids))
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToQueryItems, err)
	}
	return collectItems(rows)
}

// SearchItems finds searchable items whose accent-folded name contains text
func (r *ItemRepository) SearchItems(ctx context.Context, text string, limit int) ([]domain.Item, error) {
	if limit <= 0 || limit > domain.MaxSearchLimit {
		logger.FromContext(ctx).Debug(LogMsgSearchLimitClamped, "requested", limit)
		limit = domain.DefaultSearchLimit
	}

	query := `
		SELECT id, name, category, image_id
		FROM items
		WHERE unaccent(name) ILIKE unaccent('%' || $1 || '%')
		  AND category = ANY($2)
		  AND image_id <> $3
		ORDER BY name, id
		LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, text, domain.SearchableCategories, domain.PlaceholderImageID, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToSearchItems, err)
	}
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.ImageID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanItem, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgRowIteration, err)
	}
	return items, nil
}
