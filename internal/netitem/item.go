package netitem

// Item is the read side of a live engine item.
type Item interface {
	NetID() int
	Stack() int
	Prefix() uint8
	// IsExtension reports whether the item is defined outside the base game
	// and needs the extension codec to be stored losslessly.
	IsExtension() bool
}

// MutableItem is a live item that can be rebuilt from scalar fields.
type MutableItem interface {
	Item
	SetDefaults(netID int)
	ApplyPrefix(prefix uint8)
	SetStack(stack int)
}

// Engine hands out blank live items for materializing scalar records.
type Engine interface {
	NewItem() MutableItem
}

// ExtensionCodec serializes extension-defined items to a single printable
// token without commas, and back.
//
// Decode never fails from the caller's point of view: implementations log
// whatever went wrong and report ok == false.
type ExtensionCodec interface {
	Encode(item Item) (string, error)
	Decode(token string) (item Item, ok bool)
}
