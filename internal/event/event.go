package event

import (
	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// Type represents the kind of an event
type Type string

// Event is the single tagged union carried by the planner inbox
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Inbox event kinds
const (
	NewWishItem     Type = domain.EventTypeNewWishItem
	ItemRemoved     Type = domain.EventTypeItemRemoved
	ExpansionReady  Type = domain.EventTypeExpansionReady
	ExpansionFailed Type = domain.EventTypeExpansionFailed
	InventoryDelta  Type = domain.EventTypeInventoryDelta
	CraftConsumed   Type = domain.EventTypeCraftConsumed
	CraftFailed     Type = domain.EventTypeCraftFailed
	SearchRequested Type = domain.EventTypeSearchRequested
	SearchReady     Type = domain.EventTypeSearchReady
)

// Typed event payloads for type safety

// NewWishItemPayloadV1 adds Quantity units of Item to the wish list
type NewWishItemPayloadV1 struct {
	Item     domain.Item     `json:"item"`
	Quantity domain.Quantity `json:"quantity"`
	// Restored is set for entries loaded at startup, which are already persisted
	Restored bool `json:"restored,omitempty"`
}

// ItemRemovedPayloadV1 removes Quantity units of a wish-list item. Crafted units
// also consume their recipe from inventory.
type ItemRemovedPayloadV1 struct {
	ItemID   domain.ItemID   `json:"item_id"`
	Quantity domain.Quantity `json:"quantity"`
	Crafted  bool            `json:"crafted"`
}

// ExpansionReadyPayloadV1 carries a completed background expansion
type ExpansionReadyPayloadV1 struct {
	ItemID     domain.ItemID      `json:"item_id"`
	Generation uint64             `json:"generation"`
	Resolution *domain.Resolution `json:"resolution"`
	Items      []domain.Item      `json:"items"`
}

// ExpansionFailedPayloadV1 carries a failed background expansion
type ExpansionFailedPayloadV1 struct {
	ItemID     domain.ItemID `json:"item_id"`
	Generation uint64        `json:"generation"`
	Reason     string        `json:"reason"`
}

// InventoryDeltaPayloadV1 adjusts a held quantity by a signed delta
type InventoryDeltaPayloadV1 struct {
	Item  domain.Item `json:"item"`
	Delta int32       `json:"delta"`
}

// CraftConsumedPayloadV1 carries the inventory consumed by a craft
type CraftConsumedPayloadV1 struct {
	ItemID   domain.ItemID   `json:"item_id"`
	Consumed domain.ItemList `json:"consumed"`
	Items    []domain.Item   `json:"items"`
}

// CraftFailedPayloadV1 carries a craft whose recipe could not be consumed. Item
// and Quantity are the wish-list units the craft removed.
type CraftFailedPayloadV1 struct {
	Item     domain.Item     `json:"item"`
	Quantity domain.Quantity `json:"quantity"`
	Reason   string          `json:"reason"`
}

// SearchRequestedPayloadV1 starts an item search, superseding the one in flight
type SearchRequestedPayloadV1 struct {
	Text string `json:"text"`
}

// SearchReadyPayloadV1 carries the ranked results of a search
type SearchReadyPayloadV1 struct {
	Seq   uint64        `json:"seq"`
	Text  string        `json:"text"`
	Items []domain.Item `json:"items"`
	Error string        `json:"error,omitempty"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewWishItemEvent creates a wish-list addition
func NewWishItemEvent(item domain.Item, quantity domain.Quantity) Event {
	return newEvent(NewWishItem, NewWishItemPayloadV1{Item: item, Quantity: quantity})
}

// NewRestoredWishItemEvent creates a wish-list addition for an entry loaded from storage
func NewRestoredWishItemEvent(item domain.Item, quantity domain.Quantity) Event {
	return newEvent(NewWishItem, NewWishItemPayloadV1{Item: item, Quantity: quantity, Restored: true})
}

// NewItemRemovedEvent creates a wish-list removal
func NewItemRemovedEvent(itemID domain.ItemID, quantity domain.Quantity, crafted bool) Event {
	return newEvent(ItemRemoved, ItemRemovedPayloadV1{ItemID: itemID, Quantity: quantity, Crafted: crafted})
}

// NewExpansionReadyEvent creates a completed expansion
func NewExpansionReadyEvent(itemID domain.ItemID, generation uint64, res *domain.Resolution, items []domain.Item) Event {
	return newEvent(ExpansionReady, ExpansionReadyPayloadV1{ItemID: itemID, Generation: generation, Resolution: res, Items: items})
}

// NewExpansionFailedEvent creates a failed expansion
func NewExpansionFailedEvent(itemID domain.ItemID, generation uint64, err error) Event {
	return newEvent(ExpansionFailed, ExpansionFailedPayloadV1{ItemID: itemID, Generation: generation, Reason: err.Error()})
}

// NewInventoryDeltaEvent creates an inventory adjustment
func NewInventoryDeltaEvent(item domain.Item, delta int32) Event {
	return newEvent(InventoryDelta, InventoryDeltaPayloadV1{Item: item, Delta: delta})
}

// NewCraftConsumedEvent creates a craft decrement result
func NewCraftConsumedEvent(itemID domain.ItemID, consumed domain.ItemList, items []domain.Item) Event {
	return newEvent(CraftConsumed, CraftConsumedPayloadV1{ItemID: itemID, Consumed: consumed, Items: items})
}

// NewCraftFailedEvent creates a failed craft decrement
func NewCraftFailedEvent(item domain.Item, quantity domain.Quantity, err error) Event {
	return newEvent(CraftFailed, CraftFailedPayloadV1{Item: item, Quantity: quantity, Reason: err.Error()})
}

// NewSearchRequestedEvent creates a search request
func NewSearchRequestedEvent(text string) Event {
	return newEvent(SearchRequested, SearchRequestedPayloadV1{Text: text})
}

// NewSearchReadyEvent creates a search result
func NewSearchReadyEvent(seq uint64, text string, items []domain.Item, err error) Event {
	p := SearchReadyPayloadV1{Seq: seq, Text: text, Items: items}
	if err != nil {
		p.Error = err.Error()
	}
	return newEvent(SearchReady, p)
}
