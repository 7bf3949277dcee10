package modcodec

import "github.com/osse101/netitem/internal/netitem"

// ModItem is an item defined by an extension (a mod). Data holds whatever the
// mod saves for the item beyond the three scalar fields. After a round trip
// every integer in Data is an int64, floats are float64, and nested maps are
// map[string]any, so callers should store values in those types.
type ModItem struct {
	Mod   string         `cbor:"mod" json:"mod"`
	Name  string         `cbor:"name" json:"name"`
	ID    int            `cbor:"netID" json:"netID"`
	Count int            `cbor:"stack" json:"stack"`
	Pfx   uint8          `cbor:"prefix" json:"prefix"`
	Data  map[string]any `cbor:"data,omitempty" json:"data,omitempty"`
}

var _ netitem.MutableItem = (*ModItem)(nil)

func (m *ModItem) NetID() int        { return m.ID }
func (m *ModItem) Stack() int        { return m.Count }
func (m *ModItem) Prefix() uint8     { return m.Pfx }
func (m *ModItem) IsExtension() bool { return true }

func (m *ModItem) SetDefaults(netID int) {
	m.ID = netID
	m.Count = 1
	m.Pfx = 0
}

func (m *ModItem) ApplyPrefix(prefix uint8) { m.Pfx = prefix }
func (m *ModItem) SetStack(stack int)       { m.Count = stack }
