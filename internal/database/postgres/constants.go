package postgres

// Error messages for inventory queries
const (
	ErrMsgGetInventoryFailed    = "failed to get inventory"
	ErrMsgUpsertInventoryFailed = "failed to upsert inventory"
	ErrMsgDeleteInventoryFailed = "failed to delete inventory"
)
