package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a player has no stored inventory.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrTooManySlots is returned when an encoded inventory has more entries than the layout.
	ErrTooManySlots = errors.New(ErrMsgTooManySlots)

	// ErrSlotOutOfRange is returned for a slot index outside the layout.
	ErrSlotOutOfRange = errors.New(ErrMsgSlotOutOfRange)

	// ErrInvalidPlayerID is returned when the player id is empty.
	ErrInvalidPlayerID = errors.New(ErrMsgInvalidPlayerID)
)

// SlotError reports a slot that failed to parse.
type SlotError struct {
	Slot int
	Raw  string
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d (%q): %v", e.Slot, e.Raw, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}

// SkippedSlots lists the slot indexes carried by err, which may be a single
// SlotError or several joined with errors.Join.
func SkippedSlots(err error) []int {
	if err == nil {
		return nil
	}
	var slotErr *SlotError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []int
		for _, e := range joined.Unwrap() {
			if errors.As(e, &slotErr) {
				out = append(out, slotErr.Slot)
			}
		}
		return out
	}
	if errors.As(err, &slotErr) {
		return []int{slotErr.Slot}
	}
	return nil
}
