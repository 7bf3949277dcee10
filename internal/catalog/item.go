package catalog

import "github.com/osse101/netitem/internal/netitem"

// Item is a live base-game item built from the catalog.
type Item struct {
	netID  int
	stack  int
	prefix uint8
}

var _ netitem.MutableItem = (*Item)(nil)

func (i *Item) NetID() int        { return i.netID }
func (i *Item) Stack() int        { return i.stack }
func (i *Item) Prefix() uint8     { return i.prefix }
func (i *Item) IsExtension() bool { return false }

// SetDefaults resets the item to a single unprefixed netID. Unknown ids are
// kept as-is; legality is not this package's concern.
func (i *Item) SetDefaults(netID int) {
	i.netID = netID
	i.stack = 1
	i.prefix = 0
}

func (i *Item) ApplyPrefix(prefix uint8) { i.prefix = prefix }
func (i *Item) SetStack(stack int)       { i.stack = stack }
