package planner

import (
	"context"
	"time"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/metrics"
	"github.com/osse101/FarmPlanner_Go/internal/search"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

// Job names used in logs
const (
	jobExpand = "expand"
	jobCraft  = "craft"
	jobSearch = "search"
	jobFlush  = "flush"
)

// expand tags the entry with a new generation and resolves one unit of it in the background
func (p *Planner) expand(ctx context.Context, entry *domain.WishEntry) {
	p.generation++
	entry.Generation = p.generation
	itemID, generation := entry.Item.ID, entry.Generation

	logger.FromContext(ctx).Debug(LogMsgExpansionQueued, "item_id", itemID, "generation", generation)
	p.submit(ctx, jobExpand, worker.JobFunc(func(jobCtx context.Context) error {
		start := time.Now()
		res, items, err := p.crafting.ResolveWishItem(jobCtx, itemID)
		metrics.ExpansionDuration.Observe(time.Since(start).Seconds())

		var evt event.Event
		if err != nil {
			metrics.ExpansionFailures.WithLabelValues(metrics.FailureReason(err)).Inc()
			logger.FromContext(jobCtx).Warn(LogMsgExpansionFailed, "item_id", itemID, "generation", generation, "error", err)
			evt = event.NewExpansionFailedEvent(itemID, generation, err)
		} else {
			evt = event.NewExpansionReadyEvent(itemID, generation, res, items)
		}
		return p.deliver(jobCtx, evt)
	}))
}

// craftRequest is a crafted removal waiting for its inventory decrement
type craftRequest struct {
	item     domain.Item
	quantity domain.Quantity
}

// queueCraft schedules a craft decrement. Crafts run one at a time so each one
// walks the inventory left by the previous one.
func (p *Planner) queueCraft(ctx context.Context, item domain.Item, quantity domain.Quantity) {
	p.crafts = append(p.crafts, craftRequest{item: item, quantity: quantity})
	p.nextCraft(ctx)
}

// nextCraft starts the oldest queued craft unless one is in flight. Its result
// arrives as CraftConsumed or CraftFailed, which start the next one.
func (p *Planner) nextCraft(ctx context.Context) {
	if p.craftBusy || len(p.crafts) == 0 {
		return
	}
	req := p.crafts[0]
	p.crafts = p.crafts[1:]
	p.craftBusy = true
	p.craft(ctx, req)
}

// craft computes, from a copy of the current inventory, what crafting the
// requested units of the item consumes
func (p *Planner) craft(ctx context.Context, req craftRequest) {
	inventory := p.inventory.Clone()
	itemID := req.item.ID

	p.submit(ctx, jobCraft, worker.JobFunc(func(jobCtx context.Context) error {
		log := logger.FromContext(jobCtx)
		consumed, err := p.crafting.CraftDecrement(jobCtx, itemID, req.quantity, inventory)
		if err != nil {
			metrics.CraftFailures.WithLabelValues(metrics.FailureReason(err)).Inc()
			log.Warn(LogMsgCraftFailed, "item_id", itemID, "quantity", req.quantity, "error", err)
			return p.deliver(jobCtx, event.NewCraftFailedEvent(req.item, req.quantity, err))
		}
		var items []domain.Item
		if !consumed.IsEmpty() {
			// Missing records only cost display names
			items, err = p.catalog.GetItemsByIDs(jobCtx, consumed.IDs())
			if err != nil {
				log.Warn(LogMsgCraftItemsLookupFailed, "item_id", itemID, "error", err)
			}
		}
		return p.deliver(jobCtx, event.NewCraftConsumedEvent(itemID, consumed, items))
	}))
}

// runSearch queries the catalog and ranks the hits. A superseded search exits
// without reporting.
func (p *Planner) runSearch(ctx, searchCtx context.Context, seq uint64, text string) {
	p.submit(ctx, jobSearch, worker.JobFunc(func(jobCtx context.Context) error {
		items, err := p.catalog.SearchItems(searchCtx, text, domain.MaxSearchLimit)
		if searchCtx.Err() != nil {
			return nil
		}
		ranked := search.Rank(text, items, domain.DefaultSearchLimit)
		return p.deliver(jobCtx, event.NewSearchReadyEvent(seq, text, ranked, err))
	}))
}

// flush hands this frame's writes to the persister as one job. On shutdown the
// writes are applied in place since the pool may discard queued jobs.
func (p *Planner) flush(ctx context.Context, inline bool) {
	writes := sortedWrites(p.dirty)
	p.dirty = make(map[writeKey]pendingWrite)

	if inline {
		p.persist.apply(context.WithoutCancel(ctx), writes)
		return
	}
	p.submit(ctx, jobFlush, worker.JobFunc(func(jobCtx context.Context) error {
		p.persist.apply(jobCtx, writes)
		return nil
	}))
}

func (p *Planner) deliver(ctx context.Context, evt event.Event) error {
	if err := p.inbox.Post(ctx, evt); err != nil {
		logger.FromContext(ctx).Debug(LogMsgResultPostFailed, "type", evt.Type, "error", err)
		return err
	}
	return nil
}
