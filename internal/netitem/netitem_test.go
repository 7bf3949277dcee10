package netitem

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetItem_ZeroValueIsEmpty(t *testing.T) {
	var n NetItem

	assert.True(t, n.IsEmpty())
	assert.Equal(t, KindScalar, n.Kind())
	assert.Equal(t, "0,0,0", n.String())
}

func TestNetItem_String(t *testing.T) {
	assert.Equal(t, "5,1,0", New(5, 1, 0).String())
	assert.Equal(t, "-5,10,255", New(-5, 10, 255).String())

	rec := NetItem{kind: KindPayload, netID: 9, payload: "AAEC"}
	assert.Equal(t, "AAEC", rec.String())
}

func TestNetItem_JSON(t *testing.T) {
	data, err := json.Marshal(New(3507, 1, 82))
	require.NoError(t, err)
	assert.JSONEq(t, `{"netID":3507,"prefix":82,"stack":1}`, string(data))

	var back NetItem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, New(3507, 1, 82), back)
}

func TestNetItem_JSONPayload(t *testing.T) {
	rec := NetItem{kind: KindPayload, netID: 6001, stack: 1, payload: "H4sIAAAA"}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"netID":6001,"prefix":0,"stack":1,"payload":"H4sIAAAA"}`, string(data))

	var back NetItem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, KindPayload, back.Kind())
	assert.Equal(t, "H4sIAAAA", back.String())
}

func TestNetItem_JSONRejectsCommaPayload(t *testing.T) {
	var n NetItem
	err := json.Unmarshal([]byte(`{"netID":1,"prefix":0,"stack":1,"payload":"a,b"}`), &n)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestNetItem_JSONRange(t *testing.T) {
	tests := []struct {
		name  string
		netID int64
		stack int64
		ok    bool
	}{
		{"max", math.MaxInt32, math.MaxInt32, true},
		{"min", math.MinInt32, math.MinInt32, true},
		{"netID past max", math.MaxInt32 + 1, 1, false},
		{"netID past min", math.MinInt32 - 1, 1, false},
		{"netID five billion", 5000000000, 1, false},
		{"stack past max", 1, math.MaxInt32 + 1, false},
		{"stack past min", 1, math.MinInt32 - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := fmt.Sprintf(`{"netID":%d,"prefix":0,"stack":%d}`, tt.netID, tt.stack)

			var n NetItem
			err := json.Unmarshal([]byte(data), &n)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrFormat)
				assert.Contains(t, err.Error(), ErrMsgOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int(tt.netID), n.NetID())
			assert.Equal(t, int(tt.stack), n.Stack())
			assert.Equal(t, fmt.Sprintf("%d,%d,0", tt.netID, tt.stack), n.String())
		})
	}
}

func TestFromItem(t *testing.T) {
	rec, err := FromItem(nil)
	require.NoError(t, err)
	assert.Equal(t, Empty, rec)

	rec, err = FromItem(stubItem{netID: 3507, stack: 2, prefix: 82})
	require.NoError(t, err)
	assert.Equal(t, "3507,2,82", rec.String())
	_, ok := rec.Item()
	assert.True(t, ok)

	_, err = FromItem(stubItem{netID: 1 << 32, stack: 1})
	assert.ErrorIs(t, err, ErrFormat)

	_, err = FromItem(stubItem{netID: 1, stack: math.MaxInt32 + 1})
	assert.ErrorIs(t, err, ErrFormat)
}

type stubItem struct {
	netID  int
	stack  int
	prefix uint8
}

func (s stubItem) NetID() int        { return s.netID }
func (s stubItem) Stack() int        { return s.stack }
func (s stubItem) Prefix() uint8     { return s.prefix }
func (s stubItem) IsExtension() bool { return false }

func TestKind_String(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "payload", KindPayload.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
