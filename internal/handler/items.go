package handler

import (
	"net/http"

	"github.com/osse101/netitem/internal/logger"
	"github.com/osse101/netitem/internal/metrics"
	"github.com/osse101/netitem/internal/netitem"
)

// ItemNamer resolves the display name of an item id with a prefix, "" when unknown
type ItemNamer interface {
	DisplayName(netID int, prefix uint8) string
}

// ItemParser reads and builds slot records
type ItemParser interface {
	ParseNullable(s *string) (netitem.NetItem, error)
	FromScalars(netID, stack int32, prefix uint8) netitem.NetItem
}

// ParseItemRequest holds the wire string to parse. A missing or null value
// is rejected the same way as an absent string.
type ParseItemRequest struct {
	Value *string `json:"value"`
}

// ItemView describes one parsed record
type ItemView struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	NetID   int    `json:"net_id"`
	Stack   int    `json:"stack"`
	Prefix  uint8  `json:"prefix"`
	Payload string `json:"payload,omitempty"`
	Empty   bool   `json:"empty"`
	Name    string `json:"name,omitempty"`
}

// FormatItemRequest holds the scalar fields of a record
type FormatItemRequest struct {
	NetID  int `json:"net_id" validate:"gte=-2147483648,lte=2147483647"`
	Stack  int `json:"stack" validate:"min=0,lte=2147483647"`
	Prefix int `json:"prefix" validate:"min=0,max=255"`
}

// FormatItemResponse holds the wire string of a record
type FormatItemResponse struct {
	Value string `json:"value"`
}

func newItemView(rec netitem.NetItem, namer ItemNamer) ItemView {
	view := ItemView{
		Kind:   rec.Kind().String(),
		Value:  rec.String(),
		NetID:  rec.NetID(),
		Stack:  rec.Stack(),
		Prefix: rec.Prefix(),
		Empty:  rec.IsEmpty(),
	}
	if payload, ok := rec.Payload(); ok {
		view.Payload = payload
	}
	if namer != nil && !rec.IsEmpty() {
		view.Name = namer.DisplayName(rec.NetID(), rec.Prefix())
	}
	return view
}

// HandleParseItem parses a single slot string
// @Summary Parse item string
// @Description Parses "netID,stack,prefix" or a payload token into a record
// @Tags items
// @Accept json
// @Produce json
// @Param request body ParseItemRequest true "Item string"
// @Success 200 {object} ItemView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/parse [post]
func HandleParseItem(parser ItemParser, namer ItemNamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ParseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Parse item"); err != nil {
			return
		}

		rec, err := parser.ParseNullable(req.Value)
		raw := ""
		if req.Value != nil {
			raw = *req.Value
		}
		metrics.ObserveParse(raw, rec, err)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgServiceError, "action", "parse item", "error", err)
			respondServiceError(w, err, ErrMsgInvalidItemString)
			return
		}

		respondJSON(w, http.StatusOK, newItemView(rec, namer))
	}
}

// HandleFormatItem renders scalar fields as a slot string
// @Summary Format item string
// @Description Renders net_id, stack and prefix as "netID,stack,prefix"
// @Tags items
// @Accept json
// @Produce json
// @Param request body FormatItemRequest true "Item fields"
// @Success 200 {object} FormatItemResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/format [post]
func HandleFormatItem(parser ItemParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FormatItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Format item"); err != nil {
			return
		}

		rec := parser.FromScalars(int32(req.NetID), int32(req.Stack), uint8(req.Prefix))
		respondJSON(w, http.StatusOK, FormatItemResponse{Value: rec.String()})
	}
}
