package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/netitem/internal/metrics"
	"github.com/osse101/netitem/internal/netitem"
)

// Mode controls how Decode handles a slot that fails to parse.
type Mode int

const (
	// Strict stops at the first bad slot.
	Strict Mode = iota
	// Lenient leaves bad slots empty and reports them together.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Parser reads one slot from its wire string. *netitem.Codec implements it.
type Parser interface {
	Parse(s string) (netitem.NetItem, error)
}

// Decode reads a "~"-joined inventory. Fewer entries than the layout leave
// the trailing slots empty; more entries are ErrTooManySlots. The empty
// string decodes to an empty snapshot.
//
// In Lenient mode the returned snapshot is usable even when err is not nil;
// err then joins one *SlotError per skipped slot.
func Decode(p Parser, s string, mode Mode) (Snapshot, error) {
	snap := NewSnapshot()
	if s == "" {
		return snap, nil
	}

	entries := strings.Split(s, SlotSeparator)
	if len(entries) > netitem.MaxInventory {
		return snap, fmt.Errorf("%w: got %d, want at most %d", ErrTooManySlots, len(entries), netitem.MaxInventory)
	}

	var errs []error
	for i, raw := range entries {
		rec, err := p.Parse(raw)
		metrics.ObserveParse(raw, rec, err)
		if err != nil {
			slotErr := &SlotError{Slot: i, Raw: raw, Err: err}
			if mode == Strict {
				return NewSnapshot(), slotErr
			}
			metrics.SlotsSkipped.Inc()
			errs = append(errs, slotErr)
			continue
		}
		snap.slots[i] = rec
	}
	return snap, errors.Join(errs...)
}
