package domain

// Event kinds carried by the planner inbox. They also label the
// events_processed_total and stale_results_total metrics.
//
// Kinds follow the pattern: <entity>.<action> (e.g., "wish.added")
const (
	// EventTypeNewWishItem is posted when a quantity of an item is added to the wish list
	EventTypeNewWishItem = "wish.added"

	// EventTypeItemRemoved is posted when a quantity of a wish-list item is removed or crafted
	EventTypeItemRemoved = "wish.removed"

	// EventTypeExpansionReady is posted by a background expansion that completed
	EventTypeExpansionReady = "expansion.ready"

	// EventTypeExpansionFailed is posted by a background expansion that failed
	EventTypeExpansionFailed = "expansion.failed"

	// EventTypeInventoryDelta is posted when the user adjusts a held quantity
	EventTypeInventoryDelta = "inventory.delta"

	// EventTypeCraftConsumed is posted when a craft decrement has been computed
	EventTypeCraftConsumed = "inventory.craft_consumed"

	// EventTypeCraftFailed is posted when a craft decrement could not be computed
	EventTypeCraftFailed = "inventory.craft_failed"

	// EventTypeSearchRequested is posted when the user types a new search
	EventTypeSearchRequested = "search.requested"

	// EventTypeSearchReady is posted by a background search that completed
	EventTypeSearchReady = "search.ready"
)
