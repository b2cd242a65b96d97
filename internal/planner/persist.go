package planner

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/metrics"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// writeKey identifies one persisted row
type writeKey struct {
	table  string
	itemID domain.ItemID
}

// pendingWrite is the latest in-memory value of a row. A zero quantity deletes it.
type pendingWrite struct {
	key      writeKey
	quantity domain.Quantity
	seq      uint64
}

func (w pendingWrite) op() string {
	if w.quantity == 0 {
		return event.WriteOpDelete
	}
	return event.WriteOpUpsert
}

// persister applies user state writes. Flush jobs may run concurrently and out of
// order on the worker pool, so each row remembers the sequence number last
// written and older values are skipped.
type persister struct {
	state      repository.UserState
	deadLetter *event.DeadLetterWriter

	mu      sync.Mutex
	applied map[writeKey]uint64
}

func newPersister(state repository.UserState, deadLetter *event.DeadLetterWriter) *persister {
	return &persister{
		state:      state,
		deadLetter: deadLetter,
		applied:    make(map[writeKey]uint64),
	}
}

// apply writes every row that is newer than what was stored. Failures are logged,
// counted and dead-lettered; they never reach the in-memory state.
func (ps *persister) apply(ctx context.Context, writes []pendingWrite) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for _, w := range writes {
		if w.seq <= ps.applied[w.key] {
			continue
		}
		ps.applied[w.key] = w.seq

		if err := ps.write(ctx, w); err != nil {
			ps.fail(ctx, w, err)
		}
	}
}

func (ps *persister) write(ctx context.Context, w pendingWrite) error {
	switch {
	case w.key.table == event.WriteTableWishList && w.quantity == 0:
		return ps.state.DeleteWishItem(ctx, w.key.itemID)
	case w.key.table == event.WriteTableWishList:
		return ps.state.UpsertWishItem(ctx, w.key.itemID, w.quantity)
	case w.quantity == 0:
		return ps.state.DeleteInventory(ctx, w.key.itemID)
	default:
		return ps.state.UpsertInventory(ctx, w.key.itemID, w.quantity)
	}
}

func (ps *persister) fail(ctx context.Context, w pendingWrite, err error) {
	log := logger.FromContext(ctx)
	log.Warn(LogMsgPersistenceFailed,
		"table", w.key.table,
		"op", w.op(),
		"item_id", w.key.itemID,
		"error", err)
	metrics.PersistenceFailures.WithLabelValues(w.key.table, w.op()).Inc()

	if ps.deadLetter == nil {
		return
	}
	failed := event.FailedWrite{Table: w.key.table, Op: w.op(), ItemID: w.key.itemID, Quantity: w.quantity}
	if dlErr := ps.deadLetter.Write(ctx, failed, err); dlErr != nil {
		log.Error(LogMsgDeadLetterFailed, "error", dlErr)
	}
}

// sortedWrites returns the writes ordered by table then item id
func sortedWrites(dirty map[writeKey]pendingWrite) []pendingWrite {
	out := make([]pendingWrite, 0, len(dirty))
	for _, w := range dirty {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].key.table != out[j].key.table {
			return out[i].key.table < out[j].key.table
		}
		return out[i].key.itemID < out[j].key.itemID
	})
	return out
}
