package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/netitem"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse lists the fields that failed validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err to a status code and writes it. Client errors
// carry the error text as details; server errors never do.
func respondServiceError(w http.ResponseWriter, err error, clientMsg string) {
	status := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		respondError(w, status, ErrMsgGenericServerError)
		return
	}
	if status == http.StatusNotFound {
		clientMsg = ErrMsgInventoryNotFound
	}
	respondJSON(w, status, ErrorResponse{Error: clientMsg, Details: err.Error()})
}

// mapServiceError maps domain errors to HTTP status codes
func mapServiceError(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, netitem.ErrInvalidArgument),
		errors.Is(err, netitem.ErrFormat),
		errors.Is(err, netitem.ErrInvalidPayload),
		errors.Is(err, inventory.ErrTooManySlots),
		errors.Is(err, inventory.ErrSlotOutOfRange),
		errors.Is(err, inventory.ErrInvalidPlayerID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
