package handler

import (
	"net/http"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/planner"
)

// AddWishItemRequest adds units of an item to the wish list
type AddWishItemRequest struct {
	ItemID   domain.ItemID   `json:"item_id" validate:"required"`
	Quantity domain.Quantity `json:"quantity" validate:"required,min=1"`
}

// RemoveWishItemRequest removes units of a wish-list item. Crafted units also
// consume their recipe from the inventory.
type RemoveWishItemRequest struct {
	ItemID   domain.ItemID   `json:"item_id" validate:"required"`
	Quantity domain.Quantity `json:"quantity" validate:"required,min=1"`
	Crafted  bool            `json:"crafted"`
}

// WishListResponse is the current wish list
type WishListResponse struct {
	Version  uint64                  `json:"version"`
	WishList []planner.WishEntryView `json:"wish_list"`
}

// HandleGetWishList returns the wish list with resolution state
// @Summary Get wish list
// @Description Returns every wish-list entry with its status, scaled ingredients and crafting steps
// @Tags wishlist
// @Produce json
// @Success 200 {object} WishListResponse
// @Router /wishlist [get]
func HandleGetWishList(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		respondJSON(w, http.StatusOK, WishListResponse{Version: snap.Version, WishList: snap.WishList})
	}
}

// HandleAddWishItem queues an addition to the wish list
// @Summary Add wish-list item
// @Description Adds units of an item to the wish list. The entry resolves in the background.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body AddWishItemRequest true "Item and quantity"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Quantity overflow"
// @Router /wishlist [post]
func HandleAddWishItem(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddWishItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add wish item"); err != nil {
			return
		}

		if err := svc.AddWishItem(r.Context(), req.ItemID, req.Quantity); err != nil {
			respondServiceError(w, r, ErrMsgAddWishItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgWishItemAdded, "item_id", req.ItemID, "quantity", req.Quantity)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgWishItemQueued})
	}
}

// HandleRemoveWishItem queues a removal from the wish list
// @Summary Remove or craft wish-list item
// @Description Removes units of a wish-list item. With crafted set, the recipe is consumed from the inventory.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body RemoveWishItemRequest true "Item, quantity and crafted flag"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/remove [post]
func HandleRemoveWishItem(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveWishItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove wish item"); err != nil {
			return
		}

		if err := svc.RemoveWishItem(r.Context(), req.ItemID, req.Quantity, req.Crafted); err != nil {
			respondServiceError(w, r, ErrMsgRemoveWishItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgWishItemRemoved,
			"item_id", req.ItemID,
			"quantity", req.Quantity,
			"crafted", req.Crafted)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgWishItemQueued})
	}
}

// ShortfallResponse lists the base ingredients still missing for the ready entries
type ShortfallResponse struct {
	Version   uint64                  `json:"version"`
	Shortfall []domain.IngredientNeed `json:"shortfall"`
	Error     string                  `json:"error,omitempty"`
}

// HandleGetShortfall returns what is still needed
// @Summary Get shortfall
// @Description Returns, per base ingredient, the demand of all ready wish-list entries minus the inventory, with the monsters dropping it
// @Tags wishlist
// @Produce json
// @Success 200 {object} ShortfallResponse
// @Router /shortfall [get]
func HandleGetShortfall(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		respondJSON(w, http.StatusOK, ShortfallResponse{
			Version:   snap.Version,
			Shortfall: snap.Shortfall,
			Error:     snap.ShortfallError,
		})
	}
}

// HandleGetState returns the whole published snapshot
// @Summary Get planner state
// @Description Returns the wish list, inventory, shortfall, sub-areas and search results in one document
// @Tags wishlist
// @Produce json
// @Success 200 {object} planner.Snapshot
// @Router /state [get]
func HandleGetState(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot())
	}
}
