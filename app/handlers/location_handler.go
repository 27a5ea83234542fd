package handlers

import (
	"net/http"
	"strconv"

	"github.com/hqvu/furnistore/app/repositories"
	"github.com/unrolled/render"
)

type LocationHandler struct {
	render       *render.Render
	locationRepo repositories.LocationRepository
}

func NewLocationHandler(rnd *render.Render, locationRepo repositories.LocationRepository) *LocationHandler {
	return &LocationHandler{render: rnd, locationRepo: locationRepo}
}

// List returns children of parent_id; without one it returns provinces.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	var parentID *int
	if raw := r.URL.Query().Get("parent_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid parent_id"})
			return
		}
		parentID = &id
	}

	locations, err := h.locationRepo.FindChildren(r.Context(), parentID)
	if err != nil {
		respondServiceError(h.render, w, "ListLocations", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, locations)
}
