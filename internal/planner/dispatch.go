package planner

import (
	"context"
	"strings"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/metrics"
)

func (p *Planner) dispatch(ctx context.Context, evt event.Event) {
	log := logger.FromContext(ctx)

	switch evt.Type {
	case event.NewWishItem:
		if payload, ok := decode[event.NewWishItemPayloadV1](ctx, evt); ok {
			p.handleNewWishItem(ctx, payload)
		}
	case event.ItemRemoved:
		if payload, ok := decode[event.ItemRemovedPayloadV1](ctx, evt); ok {
			p.handleItemRemoved(ctx, payload)
		}
	case event.ExpansionReady:
		if payload, ok := decode[event.ExpansionReadyPayloadV1](ctx, evt); ok {
			p.handleExpansionReady(ctx, payload)
		}
	case event.ExpansionFailed:
		if payload, ok := decode[event.ExpansionFailedPayloadV1](ctx, evt); ok {
			p.handleExpansionFailed(ctx, payload)
		}
	case event.InventoryDelta:
		if payload, ok := decode[event.InventoryDeltaPayloadV1](ctx, evt); ok {
			p.handleInventoryDelta(ctx, payload)
		}
	case event.CraftConsumed:
		if payload, ok := decode[event.CraftConsumedPayloadV1](ctx, evt); ok {
			p.handleCraftConsumed(ctx, payload)
		}
	case event.CraftFailed:
		if payload, ok := decode[event.CraftFailedPayloadV1](ctx, evt); ok {
			p.handleCraftFailed(ctx, payload)
		}
	case event.SearchRequested:
		if payload, ok := decode[event.SearchRequestedPayloadV1](ctx, evt); ok {
			p.handleSearchRequested(ctx, payload)
		}
	case event.SearchReady:
		if payload, ok := decode[event.SearchReadyPayloadV1](ctx, evt); ok {
			p.handleSearchReady(ctx, payload)
		}
	default:
		log.Warn(LogMsgUnknownEvent, "type", evt.Type)
	}
}

func decode[T any](ctx context.Context, evt event.Event) (T, bool) {
	payload, err := event.DecodePayload[T](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEventDecodeFailed, "type", evt.Type, "error", err)
		return payload, false
	}
	return payload, true
}

func (p *Planner) handleNewWishItem(ctx context.Context, payload event.NewWishItemPayloadV1) {
	log := logger.FromContext(ctx)
	if payload.Quantity <= 0 {
		log.Warn(LogMsgEventRejected, "type", event.NewWishItem, "item_id", payload.Item.ID, "quantity", payload.Quantity)
		return
	}
	p.arena.Put(payload.Item)

	entry, ok := p.entries[payload.Item.ID]
	if !ok {
		entry = &domain.WishEntry{Item: payload.Item, Quantity: payload.Quantity, Status: domain.StatusPending}
		p.entries[payload.Item.ID] = entry
		p.expand(ctx, entry)
	} else {
		quantity, err := domain.AddQuantity(entry.Quantity, payload.Quantity)
		if err != nil {
			log.Warn(LogMsgEventRejected, "type", event.NewWishItem, "item_id", payload.Item.ID, "error", err)
			return
		}
		entry.Quantity = quantity
		entry.Item = payload.Item

		switch entry.Status {
		case domain.StatusPending:
			// The expansion in flight covers the merged quantity
		case domain.StatusFailed:
			entry.Status = domain.StatusPending
			entry.FailReason = ""
			p.expand(ctx, entry)
		default:
			// Ready keeps its payload until the fresh expansion lands
			p.expand(ctx, entry)
		}
	}

	if !payload.Restored {
		p.markDirty(event.WriteTableWishList, entry.Item.ID, entry.Quantity)
	}
}

func (p *Planner) handleItemRemoved(ctx context.Context, payload event.ItemRemovedPayloadV1) {
	log := logger.FromContext(ctx)
	entry, ok := p.entries[payload.ItemID]
	if !ok {
		log.Warn(LogMsgRemovalOfUnknownItem, "item_id", payload.ItemID)
		return
	}
	quantity := payload.Quantity
	if quantity > entry.Quantity {
		quantity = entry.Quantity
	}
	if quantity <= 0 {
		log.Warn(LogMsgEventRejected, "type", event.ItemRemoved, "item_id", payload.ItemID, "quantity", payload.Quantity)
		return
	}

	if payload.Crafted {
		p.queueCraft(ctx, entry.Item, quantity)
	}

	entry.Quantity -= quantity
	if entry.Quantity == 0 {
		// Any expansion still in flight for this entry becomes stale
		delete(p.entries, payload.ItemID)
	}
	p.markDirty(event.WriteTableWishList, payload.ItemID, entry.Quantity)
}

func (p *Planner) handleExpansionReady(ctx context.Context, payload event.ExpansionReadyPayloadV1) {
	entry, ok := p.current(ctx, event.ExpansionReady, payload.ItemID, payload.Generation)
	if !ok {
		return
	}
	p.arena.Put(payload.Items...)
	entry.Status = domain.StatusReady
	entry.Resolution = payload.Resolution
	entry.FailReason = ""
}

func (p *Planner) handleExpansionFailed(ctx context.Context, payload event.ExpansionFailedPayloadV1) {
	entry, ok := p.current(ctx, event.ExpansionFailed, payload.ItemID, payload.Generation)
	if !ok {
		return
	}
	entry.Status = domain.StatusFailed
	entry.Resolution = nil
	entry.FailReason = payload.Reason
}

// current returns the entry an expansion result belongs to, or reports the result as stale
func (p *Planner) current(ctx context.Context, kind event.Type, itemID domain.ItemID, generation uint64) (*domain.WishEntry, bool) {
	entry, ok := p.entries[itemID]
	if ok && entry.Generation == generation {
		return entry, true
	}
	p.stale(ctx, kind, "item_id", itemID, "generation", generation)
	return nil, false
}

func (p *Planner) stale(ctx context.Context, kind event.Type, args ...any) {
	metrics.StaleResults.WithLabelValues(string(kind)).Inc()
	logger.FromContext(ctx).Debug(LogMsgStaleResultDropped, append([]any{"type", kind}, args...)...)
}

func (p *Planner) handleInventoryDelta(ctx context.Context, payload event.InventoryDeltaPayloadV1) {
	next, err := domain.ApplyDelta(p.inventory.Get(payload.Item.ID), payload.Delta)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventRejected, "type", event.InventoryDelta, "item_id", payload.Item.ID, "error", err)
		return
	}
	p.arena.Put(payload.Item)
	p.setInventory(payload.Item.ID, next)
}

func (p *Planner) handleCraftConsumed(ctx context.Context, payload event.CraftConsumedPayloadV1) {
	p.craftBusy = false
	defer p.nextCraft(ctx)

	p.craftFailure = nil
	p.arena.Put(payload.Items...)
	for _, id := range payload.Consumed.IDs() {
		// Another event may have lowered the quantity since the craft was computed
		held := p.inventory.Get(id)
		next := held - payload.Consumed[id]
		if next < 0 {
			next = 0
		}
		p.setInventory(id, next)
	}
}

// handleCraftFailed gives the removed units back to the wish list since nothing
// was taken from inventory, and keeps the failure visible until the next craft
// succeeds
func (p *Planner) handleCraftFailed(ctx context.Context, payload event.CraftFailedPayloadV1) {
	p.craftBusy = false
	defer p.nextCraft(ctx)

	p.craftFailure = &CraftFailure{Item: payload.Item, Quantity: payload.Quantity, Reason: payload.Reason}
	p.handleNewWishItem(ctx, event.NewWishItemPayloadV1{Item: payload.Item, Quantity: payload.Quantity})
}

func (p *Planner) setInventory(id domain.ItemID, quantity domain.Quantity) {
	if p.inventory.Get(id) == quantity {
		return
	}
	p.inventory.Set(id, quantity)
	p.markDirty(event.WriteTableInventory, id, quantity)
}

func (p *Planner) handleSearchRequested(ctx context.Context, payload event.SearchRequestedPayloadV1) {
	text := strings.TrimSpace(payload.Text)
	searchCtx, seq := p.tracker.Begin(p.runCtx, text)
	if text == "" {
		p.tracker.Finish(seq)
		p.search = SearchResults{Seq: seq}
		return
	}
	p.search = SearchResults{Seq: seq, Text: text, Pending: true, Items: p.search.Items}
	p.runSearch(ctx, searchCtx, seq, text)
}

func (p *Planner) handleSearchReady(ctx context.Context, payload event.SearchReadyPayloadV1) {
	if !p.tracker.Finish(payload.Seq) {
		p.stale(ctx, event.SearchReady, "seq", payload.Seq)
		return
	}
	p.search = SearchResults{
		Seq:   payload.Seq,
		Text:  payload.Text,
		Items: payload.Items,
		Error: payload.Error,
	}
}

func (p *Planner) markDirty(table string, id domain.ItemID, quantity domain.Quantity) {
	p.writeSeq++
	key := writeKey{table: table, itemID: id}
	p.dirty[key] = pendingWrite{key: key, quantity: quantity, seq: p.writeSeq}
}
