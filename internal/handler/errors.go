package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item id"
	ErrMsgInvalidQuantity   = "Invalid quantity parameter"

	// Wish list error messages
	ErrMsgAddWishItemFailed    = "Failed to add wish-list item"
	ErrMsgRemoveWishItemFailed = "Failed to remove wish-list item"

	// Inventory error messages
	ErrMsgAdjustInventoryFailed = "Failed to adjust inventory"
	ErrMsgBreakdownFailed       = "Failed to break down inventory"

	// Item error messages
	ErrMsgExpansionFailed = "Failed to expand recipe"
	ErrMsgSourcesFailed   = "Failed to locate sources"

	// Search error messages
	ErrMsgSearchFailed = "Failed to perform search"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgWishItemQueued        = "Wish-list change queued"
	MsgInventoryChangeQueued = "Inventory change queued"
	MsgSearchQueued          = "Search queued"
)

// Log messages
const (
	LogMsgServiceError       = "Service call failed"
	LogMsgWishItemAdded      = "Wish-list addition queued"
	LogMsgWishItemRemoved    = "Wish-list removal queued"
	LogMsgInventoryAdjusted  = "Inventory change queued"
	LogMsgSearchRequested    = "Search queued"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteBufferFailed  = "Failed to write response buffer"
	LogMsgItemRecordsMissing = "Failed to load item records, names left empty"
)

// Request parameter names
const (
	ParamItemID   = "id"
	ParamQuantity = "quantity"
	ParamQuery    = "q"
)
