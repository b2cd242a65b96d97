package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Quantity errors
	ErrMsgInvalidQuantity  = "invalid quantity"
	ErrMsgQuantityOverflow = "quantity overflow"

	// Recipe errors
	ErrMsgCyclicRecipe = "cyclic recipe"

	// Wish list errors
	ErrMsgNotInWishList = "item is not in the wish list"

	// Data source errors
	ErrMsgDataSourceUnavailable = "data source unavailable"
	ErrMsgStaleResult           = "stale result"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Quantity errors
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)
	ErrQuantityOverflow = errors.New(ErrMsgQuantityOverflow)

	// Recipe errors
	ErrCyclicRecipe = errors.New(ErrMsgCyclicRecipe)

	// Wish list errors
	ErrNotInWishList = errors.New(ErrMsgNotInWishList)

	// ErrDataSourceUnavailable is returned when the recipe/drop store cannot be reached.
	// It is fatal for the operation in progress and is never retried automatically.
	ErrDataSourceUnavailable = errors.New(ErrMsgDataSourceUnavailable)

	// ErrStaleResult marks a background result whose target is no longer tracked.
	// It is not a failure; callers drop the result without logging an error.
	ErrStaleResult = errors.New(ErrMsgStaleResult)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
