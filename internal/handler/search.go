package handler

import (
	"net/http"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// SearchQuery is the validated search text
type SearchQuery struct {
	Text string `validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
}

// HandleSearchItems starts an item search
// @Summary Search items
// @Description Starts an accent-insensitive item search. A newer search supersedes the one in flight. Poll /search/results for the ranked items.
// @Tags items
// @Produce json
// @Param q query string true "Search text"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /items/search [get]
func HandleSearchItems(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := GetQueryParam(r, w, ParamQuery)
		if !ok {
			return
		}
		query := SearchQuery{Text: text}
		if err := GetValidator().ValidateStruct(query); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		if err := svc.Search(r.Context(), text); err != nil {
			respondServiceError(w, r, ErrMsgSearchFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgSearchRequested, "text", text)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgSearchQueued})
	}
}

// HandleGetSearchResults returns the state of the latest search
// @Summary Get search results
// @Description Returns the ranked items of the latest search. Pending is set while a newer search runs.
// @Tags items
// @Produce json
// @Success 200 {object} planner.SearchResults
// @Router /search/results [get]
func HandleGetSearchResults(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := svc.Snapshot().Search
		if results.Items == nil {
			results.Items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, results)
	}
}
