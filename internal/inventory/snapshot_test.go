package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/netitem/internal/netitem"
)

func TestSnapshot_Empty(t *testing.T) {
	snap := NewSnapshot()

	enc := snap.Encode()
	assert.Equal(t, netitem.MaxInventory-1, strings.Count(enc, SlotSeparator))
	for _, entry := range strings.Split(enc, SlotSeparator) {
		assert.Equal(t, "0,0,0", entry)
	}
	assert.Empty(t, snap.Occupied())
}

func TestSnapshot_WithSlotCopies(t *testing.T) {
	orig := NewSnapshot()

	updated, err := orig.WithSlot(netitem.ArmorIndex.Start, netitem.New(4956, 1, 81))
	require.NoError(t, err)

	rec, err := orig.Slot(netitem.ArmorIndex.Start)
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty(), "source snapshot must be unchanged")

	rec, err = updated.Slot(netitem.ArmorIndex.Start)
	require.NoError(t, err)
	assert.Equal(t, 4956, rec.NetID())
	assert.Equal(t, []int{netitem.ArmorIndex.Start}, updated.Occupied())
}

func TestSnapshot_SlotBounds(t *testing.T) {
	snap := NewSnapshot()

	for _, i := range []int{-1, netitem.MaxInventory} {
		_, err := snap.Slot(i)
		assert.ErrorIs(t, err, ErrSlotOutOfRange)

		_, err = snap.WithSlot(i, netitem.New(1, 1, 0))
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
	}

	_, err := snap.Slot(netitem.MaxInventory - 1)
	assert.NoError(t, err)
}

func TestSnapshot_Region(t *testing.T) {
	snap, err := NewSnapshot().WithSlot(netitem.TrashIndex.Start, netitem.New(29, 3, 0))
	require.NoError(t, err)

	trash := snap.Region(netitem.TrashIndex)
	require.Len(t, trash, netitem.TrashSlots)
	assert.Equal(t, "29,3,0", trash[0].String())

	forge := snap.Region(netitem.ForgeIndex)
	assert.Len(t, forge, netitem.ForgeSlots)

	trash[0] = netitem.Empty
	rec, _ := snap.Slot(netitem.TrashIndex.Start)
	assert.False(t, rec.IsEmpty(), "Region returns a copy")

	assert.Nil(t, snap.Region(netitem.Region{Start: 300, End: 310}))
}
