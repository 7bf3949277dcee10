package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgInvalidItemString = "Invalid item string"
	ErrMsgInvalidInventory  = "Invalid inventory"
	ErrMsgInvalidPlayerID   = "Invalid player id"
	ErrMsgInventoryNotFound = "Inventory not found"
	ErrMsgUnknownRegion     = "Unknown region '%s'"
	ErrMsgFormatItemFailed  = "Failed to format item"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgServiceError        = "Service error"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "inventory store unreachable"
)

// Query parameters
const (
	QueryParamRegion = "region"
	URLParamPlayerID = "playerID"
)
