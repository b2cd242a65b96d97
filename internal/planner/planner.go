// Package planner owns the wish list and the inventory. A single goroutine drains
// one multiplexed inbox per frame; expansions, crafts, searches and persistence
// run on the worker pool and report back through the same inbox.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/FarmPlanner_Go/internal/crafting"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/metrics"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
	"github.com/osse101/FarmPlanner_Go/internal/search"
	"github.com/osse101/FarmPlanner_Go/internal/worker"
)

// Deps are the collaborators of a Planner
type Deps struct {
	Crafting crafting.Service
	Catalog  repository.Catalog
	State    repository.UserState
	Loader   repository.DataLoader
	Pool     *worker.Pool
	Inbox    *event.Inbox
	// DeadLetter receives user state writes that failed. Optional.
	DeadLetter    *event.DeadLetterWriter
	FrameInterval time.Duration
}

// Planner is the main loop. Everything below pollMu is owned by whoever holds
// it; background jobs only post events.
type Planner struct {
	crafting      crafting.Service
	catalog       repository.Catalog
	loader        repository.DataLoader
	pool          *worker.Pool
	inbox         *event.Inbox
	persist       *persister
	frameInterval time.Duration

	pollMu     sync.Mutex
	entries    map[domain.ItemID]*domain.WishEntry
	inventory  domain.ItemList
	arena      domain.ItemArena
	subAreas   []domain.SubAreaMaps
	generation uint64
	writeSeq   uint64
	dirty      map[writeKey]pendingWrite
	search     SearchResults
	version    uint64

	crafts       []craftRequest
	craftBusy    bool
	craftFailure *CraftFailure

	tracker  search.Tracker
	snapshot atomic.Pointer[Snapshot]

	// runCtx parents the contexts of background work started by the loop
	runCtx context.Context
}

// New creates a Planner. Start must be called before the planner accepts events.
func New(deps Deps) *Planner {
	if deps.FrameInterval <= 0 {
		deps.FrameInterval = DefaultFrameInterval
	}
	if deps.Inbox == nil {
		deps.Inbox = event.NewInbox(event.DefaultInboxSize)
	}
	p := &Planner{
		crafting:      deps.Crafting,
		catalog:       deps.Catalog,
		loader:        deps.Loader,
		pool:          deps.Pool,
		inbox:         deps.Inbox,
		persist:       newPersister(deps.State, deps.DeadLetter),
		frameInterval: deps.FrameInterval,
		entries:       make(map[domain.ItemID]*domain.WishEntry),
		inventory:     domain.ItemList{},
		arena:         domain.ItemArena{},
		dirty:         make(map[writeKey]pendingWrite),
		runCtx:        context.Background(),
	}
	p.snapshot.Store(p.buildSnapshot(context.Background()))
	return p
}

// Start loads sub-areas and the persisted user state. Restored wish-list entries
// are posted to the inbox and expand like new additions.
func (p *Planner) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	subAreas, err := p.loader.LoadAllSubAreas(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadSubAreas, err)
	}
	state, err := p.loader.LoadInitialState(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadInitialState, err)
	}

	p.pollMu.Lock()
	p.runCtx = context.WithoutCancel(ctx)
	p.subAreas = subAreas
	p.arena.Put(state.Items...)
	if state.Inventory != nil {
		p.inventory = state.Inventory.Clone()
	}
	p.version++
	p.snapshot.Store(p.buildSnapshot(ctx))
	p.pollMu.Unlock()

	for _, w := range state.WishList {
		evt := event.NewRestoredWishItemEvent(w.Item, w.Quantity)
		for {
			err := p.inbox.TryPost(evt)
			if err == nil {
				break
			}
			if !errors.Is(err, event.ErrInboxFull) {
				return fmt.Errorf("%s: %w", ErrMsgFailedToRestoreWishList, err)
			}
			// Nobody else drains before Run starts
			p.Poll(ctx)
		}
	}

	log.Info(LogMsgPlannerStarted,
		"sub_areas", len(subAreas),
		"inventory_items", len(state.Inventory),
		"wish_items", len(state.WishList))
	return nil
}

// Run polls the inbox once per frame until ctx is done
func (p *Planner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.poll(ctx, true)
			logger.FromContext(ctx).Info(LogMsgPlannerStopped)
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll drains every event present in the inbox, flushes the resulting writes and
// publishes a new snapshot. It returns the number of events handled.
func (p *Planner) Poll(ctx context.Context) int {
	return p.poll(ctx, false)
}

func (p *Planner) poll(ctx context.Context, final bool) int {
	p.pollMu.Lock()
	defer p.pollMu.Unlock()

	start := time.Now()
	events := p.inbox.Drain()
	for _, evt := range events {
		metrics.RecordEvent(ctx, evt)
		p.dispatch(ctx, evt)
	}

	if len(p.dirty) > 0 {
		p.flush(ctx, final)
	}
	if len(events) > 0 {
		p.version++
		p.snapshot.Store(p.buildSnapshot(ctx))
	}

	metrics.FrameDuration.Observe(time.Since(start).Seconds())
	metrics.InboxDepth.Set(float64(p.inbox.Len()))
	metrics.RecordWishList(p.statusCounts())
	return len(events)
}

// Stop cancels the search in flight. The worker pool is owned by the caller.
func (p *Planner) Stop() {
	p.tracker.Stop()
}

// Snapshot returns the latest published state. It never blocks on the loop.
func (p *Planner) Snapshot() *Snapshot {
	return p.snapshot.Load()
}

// AddWishItem queues an addition of quantity units of the item
func (p *Planner) AddWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgQuantityMustBePositive+": %w", quantity, domain.ErrInvalidQuantity)
	}
	item, err := p.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToLookupItem+": %w", itemID, err)
	}
	if current, ok := p.Snapshot().wishQuantity(itemID); ok {
		if _, err := domain.AddQuantity(current, quantity); err != nil {
			return fmt.Errorf(ErrMsgWishQuantityOverflow+": %w", itemID, err)
		}
	}
	return p.post(ctx, event.NewWishItemEvent(*item, quantity))
}

// RemoveWishItem queues a removal. Crafted units also consume their recipe from inventory.
func (p *Planner) RemoveWishItem(ctx context.Context, itemID domain.ItemID, quantity domain.Quantity, crafted bool) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgQuantityMustBePositive+": %w", quantity, domain.ErrInvalidQuantity)
	}
	if _, ok := p.Snapshot().wishQuantity(itemID); !ok {
		return fmt.Errorf("item %d: %w", itemID, domain.ErrNotInWishList)
	}
	return p.post(ctx, event.NewItemRemovedEvent(itemID, quantity, crafted))
}

// AdjustInventory queues a signed change of a held quantity
func (p *Planner) AdjustInventory(ctx context.Context, itemID domain.ItemID, delta int32) error {
	if delta == 0 {
		return fmt.Errorf("%s: %w", ErrMsgDeltaMustBeNonZero, domain.ErrInvalidQuantity)
	}
	item, err := p.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToLookupItem+": %w", itemID, err)
	}
	current := p.Snapshot().inventory.Get(itemID)
	if _, err := domain.ApplyDelta(current, delta); err != nil {
		return fmt.Errorf(ErrMsgInventoryOverflow+": %w", itemID, err)
	}
	return p.post(ctx, event.NewInventoryDeltaEvent(*item, delta))
}

// Search queues an item search. It supersedes any search in flight.
func (p *Planner) Search(ctx context.Context, text string) error {
	return p.post(ctx, event.NewSearchRequestedEvent(text))
}

// CalculatedInventory breaks the published inventory down into base materials
func (p *Planner) CalculatedInventory(ctx context.Context) (*domain.RecipeExpansion, error) {
	return p.crafting.CalculatedInventory(ctx, p.Snapshot().inventory)
}

func (p *Planner) post(ctx context.Context, evt event.Event) error {
	if err := p.inbox.Post(ctx, evt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPost, err)
	}
	return nil
}

// submit hands a job to the pool without blocking the loop. When the queue is
// full the job waits for a slot on its own goroutine.
func (p *Planner) submit(ctx context.Context, name string, job worker.Job) {
	err := p.pool.TryEnqueue(job)
	if err == nil {
		return
	}
	log := logger.FromContext(ctx)
	if !errors.Is(err, worker.ErrQueueFull) {
		log.Error(LogMsgSubmitFailed, "job", name, "error", err)
		return
	}
	metrics.QueueOverflows.Inc()
	log.Warn(LogMsgQueueFull, "job", name)
	go func() {
		if err := p.pool.Enqueue(p.runCtx, job); err != nil {
			log.Error(LogMsgSubmitFailed, "job", name, "error", err)
		}
	}()
}

func (p *Planner) statusCounts() map[domain.ResolutionStatus]int {
	counts := make(map[domain.ResolutionStatus]int, 3)
	for _, e := range p.entries {
		counts[e.Status]++
	}
	return counts
}
