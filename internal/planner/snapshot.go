package planner

import (
	"context"
	"sort"
	"strings"

	"github.com/osse101/FarmPlanner_Go/internal/crafting"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// ItemAmount is a quantity of an item, ready for display
type ItemAmount struct {
	Item     domain.Item     `json:"item"`
	Quantity domain.Quantity `json:"quantity"`
}

// WishEntryView is a wish-list entry with its resolution scaled to the requested quantity
type WishEntryView struct {
	Item        domain.Item             `json:"item"`
	Quantity    domain.Quantity         `json:"quantity"`
	Status      domain.ResolutionStatus `json:"status"`
	FailReason  string                  `json:"fail_reason,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Ingredients []domain.IngredientNeed `json:"ingredients,omitempty"`
	Steps       [][]ItemAmount          `json:"steps,omitempty"`
}

// SearchResults is the state of the latest search. Pending results keep the
// previous items until the new ones arrive.
type SearchResults struct {
	Seq     uint64        `json:"seq"`
	Text    string        `json:"text"`
	Pending bool          `json:"pending"`
	Items   []domain.Item `json:"items"`
	Error   string        `json:"error,omitempty"`
}

// CraftFailure is the latest crafted removal whose recipe could not be consumed.
// Its units are back on the wish list.
type CraftFailure struct {
	Item     domain.Item     `json:"item"`
	Quantity domain.Quantity `json:"quantity"`
	Reason   string          `json:"reason"`
}

// Snapshot is an immutable copy of the planner state published once per frame
type Snapshot struct {
	Version             uint64                  `json:"version"`
	WishList            []WishEntryView         `json:"wish_list"`
	Inventory           []ItemAmount            `json:"inventory"`
	Shortfall           []domain.IngredientNeed `json:"shortfall"`
	ShortfallError      string                  `json:"shortfall_error,omitempty"`
	HighlightedSubAreas []domain.SubArea        `json:"highlighted_sub_areas"`
	SubAreas            []domain.SubAreaMaps    `json:"sub_areas"`
	Search              SearchResults           `json:"search"`
	CraftsPending       int                     `json:"crafts_pending"`
	CraftError          *CraftFailure           `json:"craft_error,omitempty"`

	inventory domain.ItemList
	wish      domain.ItemList
}

// WishEntry returns the view of one wish-list item
func (s *Snapshot) WishEntry(id domain.ItemID) (WishEntryView, bool) {
	for _, v := range s.WishList {
		if v.Item.ID == id {
			return v, true
		}
	}
	return WishEntryView{}, false
}

// InventoryQuantity returns the held quantity of the item, 0 when absent
func (s *Snapshot) InventoryQuantity(id domain.ItemID) domain.Quantity {
	return s.inventory.Get(id)
}

func (s *Snapshot) wishQuantity(id domain.ItemID) (domain.Quantity, bool) {
	q, ok := s.wish[id]
	return q, ok
}

// buildSnapshot must be called with pollMu held
func (p *Planner) buildSnapshot(ctx context.Context) *Snapshot {
	log := logger.FromContext(ctx)

	snap := &Snapshot{
		Version:    p.version,
		WishList:   make([]WishEntryView, 0, len(p.entries)),
		Inventory:  make([]ItemAmount, 0, len(p.inventory)),
		Shortfall:  []domain.IngredientNeed{},
		SubAreas:   p.subAreas,
		Search:     p.search,
		CraftError: p.craftFailure,
		inventory:  p.inventory.Clone(),
		wish:       make(domain.ItemList, len(p.entries)),
	}

	var demands []crafting.Demand
	sources := make(map[domain.ItemID][]domain.MonsterSources)
	highlighted := domain.SubAreaSet{}

	for _, entry := range p.entries {
		snap.wish[entry.Item.ID] = entry.Quantity
		view := p.entryView(entry)
		if view.Error != "" {
			log.Warn(LogMsgEntryViewOverflow, "item_id", entry.Item.ID, "error", view.Error)
		}
		snap.WishList = append(snap.WishList, view)

		if entry.Status != domain.StatusReady || entry.Resolution == nil {
			continue
		}
		perUnit := make(domain.ItemList, len(entry.Resolution.Ingredients))
		for id, need := range entry.Resolution.Ingredients {
			perUnit.Set(id, need.Quantity)
			sources[id] = need.Sources
			for _, ms := range need.Sources {
				for _, sa := range ms.SubAreas {
					highlighted.Add(sa)
				}
			}
		}
		demands = append(demands, crafting.Demand{PerUnit: perUnit, Quantity: entry.Quantity})
	}
	sortByItemName(snap.WishList, func(v WishEntryView) domain.Item { return v.Item })

	for _, id := range p.inventory.IDs() {
		snap.Inventory = append(snap.Inventory, ItemAmount{Item: p.arena.Lookup(id), Quantity: p.inventory[id]})
	}
	sortByItemName(snap.Inventory, func(a ItemAmount) domain.Item { return a.Item })

	shortfall, err := crafting.Shortfall(demands, p.inventory)
	if err != nil {
		log.Warn(LogMsgShortfallOverflow, "error", err)
		snap.ShortfallError = err.Error()
	} else {
		for _, id := range shortfall.IDs() {
			snap.Shortfall = append(snap.Shortfall, domain.IngredientNeed{
				Item:     p.arena.Lookup(id),
				Quantity: shortfall[id],
				Sources:  sources[id],
			})
		}
		sortByItemName(snap.Shortfall, func(n domain.IngredientNeed) domain.Item { return n.Item })
	}
	snap.HighlightedSubAreas = highlighted.Sorted()
	snap.CraftsPending = len(p.crafts)
	if p.craftBusy {
		snap.CraftsPending++
	}
	return snap
}

// entryView scales the per-unit resolution of the entry by its quantity
func (p *Planner) entryView(entry *domain.WishEntry) WishEntryView {
	view := WishEntryView{
		Item:       entry.Item,
		Quantity:   entry.Quantity,
		Status:     entry.Status,
		FailReason: entry.FailReason,
	}
	if entry.Status != domain.StatusReady || entry.Resolution == nil {
		return view
	}

	for _, need := range entry.Resolution.Ingredients {
		q, err := domain.MulQuantity(need.Quantity, entry.Quantity)
		if err != nil {
			return WishEntryView{Item: view.Item, Quantity: view.Quantity, Status: view.Status, Error: err.Error()}
		}
		need.Quantity = q
		view.Ingredients = append(view.Ingredients, need)
	}
	sortByItemName(view.Ingredients, func(n domain.IngredientNeed) domain.Item { return n.Item })

	for _, step := range entry.Resolution.Steps {
		scaled, err := step.Scale(entry.Quantity)
		if err != nil {
			return WishEntryView{Item: view.Item, Quantity: view.Quantity, Status: view.Status, Error: err.Error()}
		}
		amounts := make([]ItemAmount, 0, len(scaled))
		for _, id := range scaled.IDs() {
			amounts = append(amounts, ItemAmount{Item: p.arena.Lookup(id), Quantity: scaled[id]})
		}
		view.Steps = append(view.Steps, amounts)
	}
	return view
}

func sortByItemName[T any](s []T, item func(T) domain.Item) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := item(s[i]), item(s[j])
		na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if na != nb {
			return na < nb
		}
		return a.ID < b.ID
	})
}
