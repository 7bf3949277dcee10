package inventory

// SlotSeparator joins the wire strings of every slot in a stored inventory.
const SlotSeparator = "~"

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when Snapshot changes shape to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

const tracerName = "github.com/osse101/netitem/internal/inventory"

// Error messages
const (
	ErrMsgNotFound        = "inventory not found"
	ErrMsgTooManySlots    = "inventory has more slots than the layout"
	ErrMsgSlotOutOfRange  = "slot index out of range"
	ErrMsgInvalidPlayerID = "player id is required"
	ErrMsgStoreFailed     = "inventory store failed"
)

// Log messages
const (
	LogMsgSnapshotLoaded  = "Inventory snapshot loaded"
	LogMsgSnapshotSaved   = "Inventory snapshot saved"
	LogMsgSnapshotDeleted = "Inventory snapshot deleted"
	LogMsgSlotsSkipped    = "Inventory slots skipped while decoding"
)

// Span attribute keys
const (
	attrPlayerID     = "player.id"
	attrDecodeMode   = "inventory.decode_mode"
	attrSlotsSkipped = "inventory.slots_skipped"
	attrCacheHit     = "inventory.cache_hit"
)
