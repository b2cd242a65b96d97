package planner

import "time"

// ==================== Loop ====================

const (
	// DefaultFrameInterval is how often the loop drains its inbox
	DefaultFrameInterval = 50 * time.Millisecond
)

// ==================== Error Messages ====================

const (
	ErrMsgFailedToLoadSubAreas     = "failed to load sub-areas"
	ErrMsgFailedToLoadInitialState = "failed to load initial state"
	ErrMsgFailedToRestoreWishList  = "failed to restore wish list"
	ErrMsgFailedToLookupItem       = "failed to look up item %d"
	ErrMsgFailedToPost             = "failed to post event"
	ErrMsgDeltaMustBeNonZero       = "inventory delta must be non-zero"
	ErrMsgQuantityMustBePositive   = "quantity must be positive (got %d)"
	ErrMsgWishQuantityOverflow     = "wish-list quantity of item %d"
	ErrMsgInventoryOverflow        = "inventory quantity of item %d"
)

// ==================== Log Messages ====================

const (
	LogMsgPlannerStarted         = "Planner started"
	LogMsgPlannerStopped         = "Planner stopped"
	LogMsgStaleResultDropped     = "Stale result dropped"
	LogMsgEventDecodeFailed      = "Failed to decode event payload"
	LogMsgUnknownEvent           = "Unknown event type"
	LogMsgEventRejected          = "Event rejected"
	LogMsgExpansionQueued        = "Expansion queued"
	LogMsgExpansionFailed        = "Expansion failed"
	LogMsgCraftFailed            = "Craft decrement failed"
	LogMsgCraftItemsLookupFailed = "Failed to look up consumed items"
	LogMsgRemovalOfUnknownItem   = "Removal of an item not in the wish list"
	LogMsgPersistenceFailed      = "User state write failed"
	LogMsgDeadLetterFailed       = "Failed to dead-letter user state write"
	LogMsgQueueFull              = "Worker queue full, submitting asynchronously"
	LogMsgSubmitFailed           = "Failed to submit job"
	LogMsgShortfallOverflow      = "Shortfall overflowed, view left empty"
	LogMsgEntryViewOverflow      = "Wish entry view overflowed"
	LogMsgResultPostFailed       = "Failed to post background result"
)
