package handler

import (
	"net/http"

	"github.com/osse101/FarmPlanner_Go/internal/crafting"
	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/repository"
)

// ExpansionResponse is the full bill of materials of an item
type ExpansionResponse struct {
	Item            domain.Item     `json:"item"`
	Quantity        domain.Quantity `json:"quantity"`
	BaseIngredients []ItemAmount    `json:"base_ingredients"`
	Steps           [][]ItemAmount  `json:"steps"`
}

// SourcesResponse lists the monsters dropping an item
type SourcesResponse struct {
	Item    domain.Item             `json:"item"`
	Sources []domain.MonsterSources `json:"sources"`
}

// HandleGetItemExpansion expands an item into base ingredients and crafting steps
// @Summary Expand recipe
// @Description Returns the base ingredients and the crafting steps, closest to the base first
// @Tags items
// @Produce json
// @Param id path int true "Item id"
// @Param quantity query int false "Units to craft" default(1)
// @Success 200 {object} ExpansionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Cyclic recipe or quantity overflow"
// @Failure 503 {object} ErrorResponse
// @Router /items/{id}/expansion [get]
func HandleGetItemExpansion(svc crafting.Service, catalog repository.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetItemIDParam(r, w)
		if !ok {
			return
		}
		quantity, ok := GetQuantityParam(r, w)
		if !ok {
			return
		}

		item, err := catalog.GetItemByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgExpansionFailed, err)
			return
		}
		exp, err := svc.ExpandFullRecipe(r.Context(), id, quantity)
		if err != nil {
			respondServiceError(w, r, ErrMsgExpansionFailed, err)
			return
		}

		lists := append([]domain.ItemList{exp.BaseIngredients}, exp.Steps...)
		amounts := toAmounts(r.Context(), catalog, lists...)
		respondJSON(w, http.StatusOK, ExpansionResponse{
			Item:            *item,
			Quantity:        quantity,
			BaseIngredients: amounts[0],
			Steps:           amounts[1:],
		})
	}
}

// HandleGetItemSources lists the monsters dropping an item and where they live
// @Summary Locate drop sources
// @Description Returns every monster dropping the item with the sub-areas it inhabits
// @Tags items
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} SourcesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /items/{id}/sources [get]
func HandleGetItemSources(svc crafting.Service, catalog repository.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetItemIDParam(r, w)
		if !ok {
			return
		}

		item, err := catalog.GetItemByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgSourcesFailed, err)
			return
		}
		sources, err := svc.LocateSources(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgSourcesFailed, err)
			return
		}
		if sources == nil {
			sources = []domain.MonsterSources{}
		}
		respondJSON(w, http.StatusOK, SourcesResponse{Item: *item, Sources: sources})
	}
}
