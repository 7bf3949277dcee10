package config

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// ConfigPathItems is the default item catalog location
const ConfigPathItems = "configs/items.json"

// Error messages
const (
	ErrMsgInvalidPort        = "PORT must be between 1 and 65535"
	ErrMsgInvalidStoreDriver = "STORE_DRIVER must be postgres or sqlite"
	ErrMsgInvalidCacheSize   = "CACHE_SIZE must not be negative"
	ErrMsgMissingSQLitePath  = "SQLITE_PATH must be set when STORE_DRIVER is sqlite"
)
