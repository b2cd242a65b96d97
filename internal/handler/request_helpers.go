package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Add wish item")
//
// Returns:
//   - error: nil if successful, error if decoding or validation failed
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddWishItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add wish item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Unlike GetQueryParam, this does not write an error response if the parameter is missing.
//
// Example usage:
//
//	quantity := GetOptionalQueryParam(r, "quantity", "1")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetItemIDParam parses the {id} path parameter. On failure the response is already written.
func GetItemIDParam(r *http.Request, w http.ResponseWriter) (domain.ItemID, bool) {
	raw := chi.URLParam(r, ParamItemID)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidItemID, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return 0, false
	}
	return domain.ItemID(id), true
}

// GetQuantityParam parses the optional quantity query parameter, defaulting to 1.
// On failure the response is already written.
func GetQuantityParam(r *http.Request, w http.ResponseWriter) (domain.Quantity, bool) {
	raw := GetOptionalQueryParam(r, ParamQuantity, "1")
	q, err := strconv.ParseInt(raw, 10, 16)
	if err != nil || q <= 0 {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidQuantity, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
		return 0, false
	}
	return domain.Quantity(q), true
}

// LogRequestFields is a helper to log common request fields in a structured way.
// This provides consistency across handlers when logging request details.
//
// Example usage:
//
//	LogRequestFields(log, "item_id", req.ItemID, "quantity", req.Quantity)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// toAmounts resolves the records of every listed item. A failed lookup only
// costs display names.
func toAmounts(ctx context.Context, catalog repository.Catalog, lists ...domain.ItemList) [][]ItemAmount {
	var ids []domain.ItemID
	for _, l := range lists {
		ids = append(ids, l.IDs()...)
	}
	arena := domain.ItemArena{}
	if len(ids) > 0 {
		items, err := catalog.GetItemsByIDs(ctx, ids)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgItemRecordsMissing, "error", err)
		}
		arena.Put(items...)
	}

	out := make([][]ItemAmount, 0, len(lists))
	for _, l := range lists {
		amounts := make([]ItemAmount, 0, len(l))
		for _, id := range l.IDs() {
			amounts = append(amounts, ItemAmount{Item: arena.Lookup(id), Quantity: l[id]})
		}
		out = append(out, amounts)
	}
	return out
}
