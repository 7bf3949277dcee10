package inventory

import (
	"fmt"
	"strings"

	"github.com/osse101/netitem/internal/netitem"
)

// Snapshot is a full flattened inventory: one record per slot of the layout.
// Snapshots are values; WithSlot returns a modified copy.
type Snapshot struct {
	slots [netitem.MaxInventory]netitem.NetItem
}

// NewSnapshot returns a snapshot with every slot empty.
func NewSnapshot() Snapshot {
	return Snapshot{}
}

// Slot returns the record at index i.
func (s Snapshot) Slot(i int) (netitem.NetItem, error) {
	if i < 0 || i >= netitem.MaxInventory {
		return netitem.Empty, fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	return s.slots[i], nil
}

// WithSlot returns a copy of s with slot i replaced by rec.
func (s Snapshot) WithSlot(i int, rec netitem.NetItem) (Snapshot, error) {
	if i < 0 || i >= netitem.MaxInventory {
		return s, fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	s.slots[i] = rec
	return s, nil
}

// Region returns a copy of the records inside r.
func (s Snapshot) Region(r netitem.Region) []netitem.NetItem {
	start, end := max(r.Start, 0), min(r.End, netitem.MaxInventory)
	if start >= end {
		return nil
	}
	out := make([]netitem.NetItem, end-start)
	copy(out, s.slots[start:end])
	return out
}

// Occupied returns the indexes of every non-empty slot in storage order.
func (s Snapshot) Occupied() []int {
	var out []int
	for i, rec := range s.slots {
		if !rec.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

// Encode joins the wire strings of every slot with SlotSeparator.
func (s Snapshot) Encode() string {
	var b strings.Builder
	for i, rec := range s.slots {
		if i > 0 {
			b.WriteString(SlotSeparator)
		}
		b.WriteString(rec.String())
	}
	return b.String()
}
