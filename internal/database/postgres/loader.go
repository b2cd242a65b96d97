package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// LoaderRepository implements repository.DataLoader for PostgreSQL
type LoaderRepository struct {
	db *pgxpool.Pool
}

// NewLoaderRepository creates a new LoaderRepository
func NewLoaderRepository(db *pgxpool.Pool) *LoaderRepository {
	return &LoaderRepository{db: db}
}

// LoadAllSubAreas returns every sub-area with its map tiles. Sub-areas without
// tiles are dropped by the inner join.
func (r *LoaderRepository) LoadAllSubAreas(ctx context.Context) ([]domain.SubAreaMaps, error) {
	query := `
		SELECT sa.id, sa.name, a.id, a.name,
		       m.id, m.name, m.x, m.y
		FROM sub_areas sa
		JOIN areas a ON a.id = sa.area_id
		JOIN maps m ON m.sub_area_id = sa.id
		ORDER BY sa.id, m.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToQuerySubAreas, err)
	}
	defer rows.Close()

	var out []domain.SubAreaMaps
	for rows.Next() {
		var sa domain.SubArea
		var m domain.Map
		err := rows.Scan(
			&sa.ID, &sa.Name, &sa.Area.ID, &sa.Area.Name,
			&m.ID, &m.Name, &m.X, &m.Y,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanMap, err)
		}
		m.SubAreaID = sa.ID

		// Rows are ordered by sub-area, so a new id starts a new group
		if n := len(out); n == 0 || out[n-1].SubArea.ID != sa.ID {
			out = append(out, domain.SubAreaMaps{SubArea: sa})
		}
		last := &out[len(out)-1]
		last.Maps = append(last.Maps, m)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgRowIteration, err)
	}

	return out, nil
}

// LoadInitialState reads the held ingredients and the persisted wish list in one
// read-only transaction so both come from the same snapshot.
func (r *LoaderRepository) LoadInitialState(ctx context.Context) (*domain.InitialState, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	state := &domain.InitialState{Inventory: make(domain.ItemList)}
	arena := make(domain.ItemArena)

	inventory, err := loadUserRows(ctx, tx, `
		SELECT i.id, i.name, i.category, i.image_id, ui.quantity
		FROM user_ingredients ui
		JOIN items i ON i.id = ui.item_id
		ORDER BY i.id
	`, ErrMsgFailedToQueryInventory)
	if err != nil {
		return nil, err
	}
	for _, row := range inventory {
		arena.Put(row.Item)
		state.Inventory.Set(row.Item.ID, row.Quantity)
	}

	wishes, err := loadUserRows(ctx, tx, `
		SELECT i.id, i.name, i.category, i.image_id, ui.quantity
		FROM user_items ui
		JOIN items i ON i.id = ui.item_id
		ORDER BY i.id
	`, ErrMsgFailedToQueryWishList)
	if err != nil {
		return nil, err
	}
	for _, row := range wishes {
		arena.Put(row.Item)
		state.WishList = append(state.WishList, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapErr(ErrMsgFailedToCommitTx, err)
	}

	for _, item := range arena {
		state.Items = append(state.Items, item)
	}
	domain.SortItemsByName(state.Items)
	return state, nil
}

func loadUserRows(ctx context.Context, tx pgx.Tx, query, errMsg string) ([]domain.WishItem, error) {
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(errMsg, err)
	}
	defer rows.Close()

	var out []domain.WishItem
	for rows.Next() {
		var row domain.WishItem
		err := rows.Scan(&row.Item.ID, &row.Item.Name, &row.Item.Category, &row.Item.ImageID, &row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUserRow, err)
		}
		if row.Quantity <= 0 {
			logger.FromContext(ctx).Warn(LogMsgSkippedStoredZero, "item_id", row.Item.ID, "quantity", row.Quantity)
			continue
		}
		out = append(out, row)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgRowIteration, err)
	}
	return out, nil
}
