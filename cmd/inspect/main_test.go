package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/netitem"
)

type mapNames map[int]string

func (m mapNames) DisplayName(id int, p uint8) string {
	name := m[id]
	if name != "" && p == 81 {
		return "Legendary " + name
	}
	return name
}

func encoded(slots map[int]string) string {
	parts := make([]string, netitem.MaxInventory)
	for i := range parts {
		parts[i] = "0,0,0"
	}
	for i, s := range slots {
		parts[i] = s
	}
	return strings.Join(parts, inventory.SlotSeparator)
}

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInspect_GroupsByRegion(t *testing.T) {
	in := encoded(map[int]string{
		0:                        "4956,1,81",
		netitem.ArmorIndex.Start: "3,1,0",
	})

	var out bytes.Buffer
	err := inspect(&out, strings.NewReader(in), mapNames{4956: "Zenith"}, inventory.Lenient, quietLog())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Inventory\n")
	assert.Contains(t, text, "Legendary Zenith x1")
	assert.Contains(t, text, "Armor\n")
	assert.Contains(t, text, "#3 x1")
	assert.NotContains(t, text, "Misc Equip", "empty regions are not listed")
}

func TestInspect_StrictFailsOnBadSlot(t *testing.T) {
	in := encoded(map[int]string{5: "1,2"})

	err := inspect(io.Discard, strings.NewReader(in), mapNames{}, inventory.Strict, quietLog())
	require.Error(t, err)
	assert.ErrorIs(t, err, netitem.ErrFormat)
}

func TestInspect_LenientReportsSkipped(t *testing.T) {
	in := encoded(map[int]string{5: "1,2", 6: "7,1,0"})

	var out bytes.Buffer
	err := inspect(&out, strings.NewReader(in), mapNames{}, inventory.Lenient, quietLog())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "! slot 5 skipped")
	assert.Contains(t, out.String(), "#7 x1")
}
