package modcodec

// MaxTokenBytes bounds the size of a token accepted by Decode, and of the
// decompressed body behind it.
const MaxTokenBytes = 64 << 10

// Log messages
const (
	LogMsgLoadItemFailed = "Error when loading item"
)

// Error messages
const (
	ErrMsgUnsupportedItem = "item is not an extension item"
	ErrMsgTokenTooLarge   = "token exceeds maximum size"
)
