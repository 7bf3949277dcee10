package catalog

// SchemaName is the embedded schema the catalog file is validated against.
const SchemaName = "items.schema.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read item catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse item catalog: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoItemsDefined   = "no items defined"
	ErrMsgZeroNetID        = "net_id 0 is reserved for empty slots"
	ErrMsgPrefixOutOfRange = "prefix id out of range"
)

// Format strings for error construction
const (
	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty name"
	ErrFmtItemNegativeMaxStack = "%w: item %d has negative max_stack"
	ErrFmtItemNegativeValue    = "%w: item %d has negative value"
	ErrFmtDuplicateNetID       = "%w: %d"
	ErrFmtDuplicatePrefix      = "%w: prefix %d"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
