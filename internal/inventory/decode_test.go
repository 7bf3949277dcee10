package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/netitem/internal/netitem"
)

func newParser() *netitem.Codec {
	return netitem.NewCodec(nil)
}

func TestDecode_RoundTrip(t *testing.T) {
	snap := NewSnapshot()
	var err error
	snap, err = snap.WithSlot(0, netitem.New(3507, 1, 82))
	require.NoError(t, err)
	snap, err = snap.WithSlot(netitem.PiggyIndex.Start+3, netitem.New(73, 99, 0))
	require.NoError(t, err)
	snap, err = snap.WithSlot(netitem.MaxInventory-1, netitem.New(-23, 2, 0))
	require.NoError(t, err)

	decoded, err := Decode(newParser(), snap.Encode(), Strict)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
	assert.Equal(t, snap.Encode(), decoded.Encode())
}

func TestDecode_ShortInventoryPadsEmpty(t *testing.T) {
	snap, err := Decode(newParser(), "5,1,0~0,0,0~8,20,0", Strict)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, snap.Occupied())
	last, _ := snap.Slot(netitem.MaxInventory - 1)
	assert.True(t, last.IsEmpty())
}

func TestDecode_EmptyString(t *testing.T) {
	snap, err := Decode(newParser(), "", Strict)
	require.NoError(t, err)
	assert.Equal(t, NewSnapshot(), snap)
}

func TestDecode_TooManySlots(t *testing.T) {
	raw := strings.Repeat("0,0,0"+SlotSeparator, netitem.MaxInventory) + "0,0,0"

	for _, mode := range []Mode{Strict, Lenient} {
		_, err := Decode(newParser(), raw, mode)
		assert.ErrorIs(t, err, ErrTooManySlots, mode.String())
	}
}

func TestDecode_Strict(t *testing.T) {
	snap, err := Decode(newParser(), "5,1,0~1,2~3,1,0", Strict)
	require.Error(t, err)

	var slotErr *SlotError
	require.True(t, errors.As(err, &slotErr))
	assert.Equal(t, 1, slotErr.Slot)
	assert.Equal(t, "1,2", slotErr.Raw)
	assert.ErrorIs(t, err, netitem.ErrFormat)
	assert.Contains(t, err.Error(), "slot 1")
	assert.Equal(t, NewSnapshot(), snap, "strict failure returns no partial snapshot")
}

func TestDecode_Lenient(t *testing.T) {
	snap, err := Decode(newParser(), "1,2~5,1,0~x,y~7,1,256", Lenient)
	require.Error(t, err)
	assert.ErrorIs(t, err, netitem.ErrFormat)
	assert.Equal(t, []int{0, 2, 3}, SkippedSlots(err))

	assert.Equal(t, []int{1}, snap.Occupied())
	rec, _ := snap.Slot(1)
	assert.Equal(t, "5,1,0", rec.String())
}

func TestSkippedSlots(t *testing.T) {
	assert.Nil(t, SkippedSlots(nil))
	assert.Nil(t, SkippedSlots(errors.New("other")))
	assert.Equal(t, []int{4}, SkippedSlots(&SlotError{Slot: 4, Err: netitem.ErrFormat}))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "lenient", Lenient.String())
}
