package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/logger"
	"github.com/osse101/netitem/internal/netitem"
)

// SlotView describes one occupied slot of an inventory
type SlotView struct {
	Index  int    `json:"index"`
	Region string `json:"region"`
	ItemView
}

// InventoryResponse lists the occupied slots of a player's inventory
type InventoryResponse struct {
	PlayerID string     `json:"player_id"`
	Region   string     `json:"region,omitempty"`
	Occupied int        `json:"occupied"`
	Slots    []SlotView `json:"slots"`
}

// PutInventoryRequest holds a "~"-joined inventory. Strict rejects the whole
// inventory on the first bad slot; otherwise bad slots are stored empty.
type PutInventoryRequest struct {
	Inventory *string `json:"inventory" validate:"required"`
	Strict    bool    `json:"strict"`
}

// InventoryHandler serves player inventories
type InventoryHandler struct {
	service inventory.Service
	namer   ItemNamer
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service inventory.Service, namer ItemNamer) *InventoryHandler {
	return &InventoryHandler{service: service, namer: namer}
}

// HandleGetInventory returns the occupied slots of a player's inventory
// @Summary Get inventory
// @Description Lists occupied slots, optionally restricted to one region
// @Tags inventory
// @Produce json
// @Param playerID path string true "Player ID"
// @Param region query string false "Region name (inventory, armor, dye, misc_equip, misc_dye, piggy, safe, trash, forge)"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory [get]
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, URLParamPlayerID)
	regionName := r.URL.Query().Get(QueryParamRegion)

	if err := GetValidator().ValidateVar(regionName, "region"); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownRegion, regionName))
		return
	}

	snap, err := h.service.GetSnapshot(r.Context(), playerID)
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgServiceError, "action", "get inventory", "error", err)
		respondServiceError(w, err, ErrMsgInvalidPlayerID)
		return
	}

	resp := InventoryResponse{PlayerID: playerID, Region: regionName, Slots: []SlotView{}}
	region, filtered := netitem.RegionByName(regionName)
	for _, i := range snap.Occupied() {
		if filtered && !region.Contains(i) {
			continue
		}
		rec, _ := snap.Slot(i)
		slotRegion, _ := netitem.RegionOf(i)
		resp.Slots = append(resp.Slots, SlotView{
			Index:    i,
			Region:   slotRegion.Name,
			ItemView: newItemView(rec, h.namer),
		})
	}
	resp.Occupied = len(resp.Slots)

	respondJSON(w, http.StatusOK, resp)
}

// HandlePutInventory stores a player's inventory
// @Summary Store inventory
// @Description Stores a "~"-joined inventory; lenient mode reports skipped slots
// @Tags inventory
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body PutInventoryRequest true "Encoded inventory"
// @Success 200 {object} inventory.SaveResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory [put]
func (h *InventoryHandler) HandlePutInventory(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, URLParamPlayerID)

	var req PutInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Put inventory"); err != nil {
		return
	}

	mode := inventory.Lenient
	if req.Strict {
		mode = inventory.Strict
	}

	result, err := h.service.SaveEncoded(r.Context(), playerID, *req.Inventory, mode)
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgServiceError, "action", "put inventory", "error", err)
		respondServiceError(w, err, ErrMsgInvalidInventory)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleDeleteInventory removes a player's inventory
// @Summary Delete inventory
// @Tags inventory
// @Param playerID path string true "Player ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory [delete]
func (h *InventoryHandler) HandleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, URLParamPlayerID)

	if err := h.service.DeleteSnapshot(r.Context(), playerID); err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgServiceError, "action", "delete inventory", "error", err)
		respondServiceError(w, err, ErrMsgInvalidPlayerID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
