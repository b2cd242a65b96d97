package handler

import (
	"net/http"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// AdjustInventoryRequest changes a held quantity by a signed delta
type AdjustInventoryRequest struct {
	ItemID domain.ItemID `json:"item_id" validate:"required"`
	Delta  int32         `json:"delta" validate:"required,min=-32767,max=32767"`
}

// InventoryResponse is the held inventory
type InventoryResponse struct {
	Version   uint64       `json:"version"`
	Inventory []ItemAmount `json:"inventory"`
}

// BreakdownResponse is the inventory broken down into base materials
type BreakdownResponse struct {
	BaseIngredients []ItemAmount   `json:"base_ingredients"`
	Steps           [][]ItemAmount `json:"steps"`
}

// HandleGetInventory returns the held inventory
// @Summary Get inventory
// @Description Returns every held item ordered by name
// @Tags inventory
// @Produce json
// @Success 200 {object} InventoryResponse
// @Router /inventory [get]
func HandleGetInventory(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		respondJSON(w, http.StatusOK, InventoryResponse{Version: snap.Version, Inventory: snap.Inventory})
	}
}

// HandleAdjustInventory queues an inventory change
// @Summary Adjust inventory
// @Description Adds a signed delta to a held quantity. Results below zero clamp to zero and remove the item.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AdjustInventoryRequest true "Item and delta"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Quantity overflow"
// @Router /inventory [post]
func HandleAdjustInventory(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustInventoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust inventory"); err != nil {
			return
		}

		if err := svc.AdjustInventory(r.Context(), req.ItemID, req.Delta); err != nil {
			respondServiceError(w, r, ErrMsgAdjustInventoryFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgInventoryAdjusted, "item_id", req.ItemID, "delta", req.Delta)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgInventoryChangeQueued})
	}
}

// HandleGetInventoryBreakdown breaks every held item down into base materials
// @Summary Get inventory breakdown
// @Description Expands every held item that has a recipe and folds the results into one picture
// @Tags inventory
// @Produce json
// @Success 200 {object} BreakdownResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /inventory/breakdown [get]
func HandleGetInventoryBreakdown(svc PlannerService, catalog repository.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exp, err := svc.CalculatedInventory(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgBreakdownFailed, err)
			return
		}

		lists := append([]domain.ItemList{exp.BaseIngredients}, exp.Steps...)
		amounts := toAmounts(r.Context(), catalog, lists...)
		respondJSON(w, http.StatusOK, BreakdownResponse{BaseIngredients: amounts[0], Steps: amounts[1:]})
	}
}
