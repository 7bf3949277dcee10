// Package catalog holds base item definitions and acts as the engine that
// materializes scalar records into live items.
package catalog

import (
	"log/slog"

	"github.com/osse101/netitem/internal/netitem"
)

// Catalog is an immutable index of item and prefix definitions.
type Catalog struct {
	items    map[int]Def
	prefixes map[uint8]string
}

var _ netitem.Engine = (*Catalog)(nil)

// New indexes a validated config.
func New(cfg *Config) *Catalog {
	c := &Catalog{
		items:    make(map[int]Def, len(cfg.Items)),
		prefixes: make(map[uint8]string, len(cfg.Prefixes)),
	}
	for _, def := range cfg.Items {
		c.items[def.NetID] = def
	}
	for _, p := range cfg.Prefixes {
		c.prefixes[uint8(p.ID)] = p.Name
	}
	return c
}

// Open loads, validates and indexes a catalog file.
func Open(path string) (*Catalog, error) {
	l := NewLoader()
	cfg, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg); err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgCatalogLoaded, "path", path, "items", len(cfg.Items), "prefixes", len(cfg.Prefixes))
	return New(cfg), nil
}

// NewItem implements netitem.Engine.
func (c *Catalog) NewItem() netitem.MutableItem {
	return &Item{}
}

// Lookup returns the definition for netID.
func (c *Catalog) Lookup(netID int) (Def, bool) {
	def, ok := c.items[netID]
	return def, ok
}

// ItemName returns the display name of netID, or "" when it is unknown.
func (c *Catalog) ItemName(netID int) string {
	return c.items[netID].Name
}

// PrefixName returns the display name of a prefix, or "" for none/unknown.
func (c *Catalog) PrefixName(prefix uint8) string {
	return c.prefixes[prefix]
}

// DisplayName joins the prefix and item names, e.g. "Legendary Zenith".
// It is "" when netID is unknown, and the bare item name when the prefix is.
func (c *Catalog) DisplayName(netID int, prefix uint8) string {
	name := c.ItemName(netID)
	if name == "" {
		return ""
	}
	if p := c.PrefixName(prefix); p != "" {
		return p + " " + name
	}
	return name
}

// Len returns the number of item definitions.
func (c *Catalog) Len() int {
	return len(c.items)
}
