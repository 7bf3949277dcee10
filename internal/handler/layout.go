package handler

import (
	"net/http"

	"github.com/osse101/netitem/internal/netitem"
)

// LayoutResponse lists the inventory regions in storage order
type LayoutResponse struct {
	MaxInventory int              `json:"max_inventory"`
	Regions      []netitem.Region `json:"regions"`
}

// LayoutProvider returns the inventory layout
type LayoutProvider interface {
	Layout() []netitem.Region
}

// HandleGetLayout returns the inventory layout
// @Summary Inventory layout
// @Description Lists each region of a flattened inventory with its slot range
// @Tags inventory
// @Produce json
// @Success 200 {object} LayoutResponse
// @Router /api/v1/layout [get]
func HandleGetLayout(provider LayoutProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, LayoutResponse{
			MaxInventory: netitem.MaxInventory,
			Regions:      provider.Layout(),
		})
	}
}
