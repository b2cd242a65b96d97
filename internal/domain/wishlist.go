package domain

// ResolutionStatus is the state of a wish-list entry.
type ResolutionStatus string

const (
	// StatusPending means the expansion has not completed yet.
	StatusPending ResolutionStatus = "pending"
	// StatusReady means ingredients, sources and steps are available.
	StatusReady ResolutionStatus = "ready"
	// StatusFailed means the last expansion failed. The entry keeps its quantity
	// and a new addition retries.
	StatusFailed ResolutionStatus = "failed"
)

// Resolution is the payload of a Ready entry. Quantities are per crafted unit;
// views multiply them by the requested quantity.
type Resolution struct {
	Ingredients map[ItemID]IngredientNeed
	Steps       []ItemList
}

// WishEntry is the in-memory state of one wish-list item. It is never persisted
// beyond its quantity.
type WishEntry struct {
	Item       Item
	Quantity   Quantity
	Status     ResolutionStatus
	Resolution *Resolution
	FailReason string
	// Generation tags the expansion in flight. Results carrying another generation are stale.
	Generation uint64
}

// InitialState is what a data loader returns at startup.
type InitialState struct {
	Inventory ItemList
	WishList  []WishItem
	Items     []Item
}

// WishItem is a persisted wish-list row.
type WishItem struct {
	Item     Item
	Quantity Quantity
}
