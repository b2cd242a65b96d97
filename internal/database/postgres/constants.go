package postgres

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToCheckRecipe    = "failed to check recipe"
	ErrMsgFailedToQueryRecipe    = "failed to query recipe"
	ErrMsgFailedToScanRecipe     = "failed to scan recipe"
	ErrMsgFailedToQueryDrops     = "failed to query drop sources"
	ErrMsgFailedToScanDrop       = "failed to scan drop source"
	ErrMsgFailedToCountItems     = "failed to count items"
	ErrMsgRecipeQuantityOverflow = "recipe quantity overflow"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItem     = "failed to get item"
	ErrMsgFailedToQueryItems  = "failed to query items"
	ErrMsgFailedToScanItem    = "failed to scan item"
	ErrMsgFailedToSearchItems = "failed to search items"
)

// Error Messages - User State Operations
const (
	ErrMsgFailedToUpsertWishItem  = "failed to upsert wish item"
	ErrMsgFailedToDeleteWishItem  = "failed to delete wish item"
	ErrMsgFailedToUpsertInventory = "failed to upsert inventory"
	ErrMsgFailedToDeleteInventory = "failed to delete inventory"
)

// Error Messages - Loader Operations
const (
	ErrMsgFailedToQuerySubAreas  = "failed to query sub-areas"
	ErrMsgFailedToScanMap        = "failed to scan map"
	ErrMsgFailedToQueryInventory = "failed to query inventory"
	ErrMsgFailedToQueryWishList  = "failed to query wish list"
	ErrMsgFailedToScanUserRow    = "failed to scan user row"
	ErrMsgRowIteration           = "row iteration error"
	ErrMsgFailedToBeginTx        = "failed to begin transaction"
	ErrMsgFailedToCommitTx       = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgFailedToRollback   = "Failed to rollback transaction"
	LogMsgSkippedStoredZero  = "Skipping stored row with non-positive quantity"
	LogMsgSearchLimitClamped = "Search limit clamped"
)
