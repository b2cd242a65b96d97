package crafting

import "time"

// ==================== Source Cache ====================

// Source cache defaults. Drop tables change only on data imports, so entries
// live for the whole session unless the cache is purged.
const (
	DefaultSourceCacheSize = 4096
	DefaultSourceCacheTTL  = 6 * time.Hour
)

// SourceCacheSchemaVersion is bumped when the cached MonsterSources layout changes
const SourceCacheSchemaVersion = "1.0"

// ==================== Expansion ====================

// MinDepthBound is used when the data source reports no items
const MinDepthBound = 1

// ResolveQuantity is the quantity wish-list items are expanded at. Views scale
// the per-unit result by the requested quantity.
const ResolveQuantity = 1

// ==================== Error Messages ====================

// Data source error messages
const (
	ErrMsgFailedToCountItems      = "failed to count items"
	ErrMsgFailedToCheckRecipe     = "failed to check recipe for item %d"
	ErrMsgFailedToGetRecipe       = "failed to get recipe for item %d"
	ErrMsgFailedToGetDropSources  = "failed to get drop sources for item %d"
	ErrMsgFailedToLoadItems       = "failed to load item records"
	ErrMsgFailedToLocateSources   = "failed to locate sources for item %d"
	ErrMsgFailedToExpandInventory = "failed to expand inventory item %d"
)

// Validation error messages
const (
	ErrMsgQuantityMustBePositive = "quantity must be positive (got %d)"
	ErrMsgDepthBoundExceeded     = "item %d exceeded %d expansion rounds"
)

// ==================== Log Messages ====================

const (
	LogMsgExpandingRecipe     = "Expanding recipe"
	LogMsgRecipeExpanded      = "Recipe expanded"
	LogMsgSourceCacheHit      = "Source cache hit"
	LogMsgSourcesLocated      = "Sources located"
	LogMsgCraftDecrementDone  = "Craft decrement computed"
	LogMsgCyclicRecipeAborted = "Cyclic recipe detected, expansion aborted"
)
