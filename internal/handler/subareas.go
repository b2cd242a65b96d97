package handler

import (
	"net/http"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// SubAreasResponse lists the sub-areas that own map tiles
type SubAreasResponse struct {
	SubAreas []domain.SubAreaMaps `json:"sub_areas"`
}

// HighlightedSubAreasResponse lists the sub-areas where ready wish-list ingredients drop
type HighlightedSubAreasResponse struct {
	Version  uint64           `json:"version"`
	SubAreas []domain.SubArea `json:"sub_areas"`
}

// HandleGetSubAreas returns every sub-area with its map tiles
// @Summary Get sub-areas
// @Description Returns every sub-area that owns at least one map tile
// @Tags subareas
// @Produce json
// @Success 200 {object} SubAreasResponse
// @Router /subareas [get]
func HandleGetSubAreas(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subAreas := svc.Snapshot().SubAreas
		if subAreas == nil {
			subAreas = []domain.SubAreaMaps{}
		}
		respondJSON(w, http.StatusOK, SubAreasResponse{SubAreas: subAreas})
	}
}

// HandleGetHighlightedSubAreas returns the sub-areas to farm
// @Summary Get highlighted sub-areas
// @Description Returns the sub-areas inhabited by monsters dropping an ingredient of a ready wish-list entry
// @Tags subareas
// @Produce json
// @Success 200 {object} HighlightedSubAreasResponse
// @Router /subareas/highlighted [get]
func HandleGetHighlightedSubAreas(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		respondJSON(w, http.StatusOK, HighlightedSubAreasResponse{Version: snap.Version, SubAreas: snap.HighlightedSubAreas})
	}
}
