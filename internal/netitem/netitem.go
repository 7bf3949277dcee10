// Package netitem implements the record stored for a single inventory slot:
// item identity, stack and prefix, or an opaque token for extension items.
package netitem

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind tells the two record shapes apart.
type Kind uint8

const (
	// KindScalar records carry only netID, stack and prefix.
	KindScalar Kind = iota
	// KindPayload records carry an extension token; the scalars mirror it.
	KindPayload
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPayload:
		return "payload"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NetItem is one inventory slot. The zero value is an empty slot.
// A NetItem is immutable once built.
type NetItem struct {
	kind    Kind
	netID   int
	stack   int
	prefix  uint8
	payload string
	item    Item
}

// Empty is the record of an empty slot ("0,0,0").
var Empty = NetItem{}

// New builds a scalar-only record. netID and stack are 32-bit on the wire,
// so the types make an unparsable record unrepresentable.
func New(netID, stack int32, prefix uint8) NetItem {
	return NetItem{kind: KindScalar, netID: int(netID), stack: int(stack), prefix: prefix}
}

// FromItem copies the scalar fields of a live item and keeps a reference to
// it. It never sets a payload; see Codec.Convert for extension items.
// Scalars outside the 32-bit range are ErrFormat.
func FromItem(item Item) (NetItem, error) {
	if item == nil {
		return Empty, nil
	}
	netID, stack, err := checkScalars(item.NetID(), item.Stack())
	if err != nil {
		return Empty, err
	}
	rec := New(netID, stack, item.Prefix())
	rec.item = item
	return rec, nil
}

// checkScalars narrows netID and stack to the 32-bit wire range.
func checkScalars(netID, stack int) (int32, int32, error) {
	if netID < math.MinInt32 || netID > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: netID %d: %s", ErrFormat, netID, ErrMsgOutOfRange)
	}
	if stack < math.MinInt32 || stack > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: stack %d: %s", ErrFormat, stack, ErrMsgOutOfRange)
	}
	return int32(netID), int32(stack), nil
}

func fromPayload(token string, item Item) NetItem {
	return NetItem{
		kind:    KindPayload,
		netID:   item.NetID(),
		stack:   item.Stack(),
		prefix:  item.Prefix(),
		payload: token,
		item:    item,
	}
}

func (n NetItem) Kind() Kind    { return n.kind }
func (n NetItem) NetID() int    { return n.netID }
func (n NetItem) Stack() int    { return n.stack }
func (n NetItem) Prefix() uint8 { return n.prefix }

// Payload returns the extension token of a payload-bearing record.
func (n NetItem) Payload() (string, bool) {
	return n.payload, n.kind == KindPayload
}

// Item returns the live item the record was built from or materialized into.
func (n NetItem) Item() (Item, bool) {
	return n.item, n.item != nil
}

// IsEmpty reports whether the record is an empty scalar slot.
func (n NetItem) IsEmpty() bool {
	return n.kind == KindScalar && n.netID == 0
}

// String renders the wire form: the payload token, or "netID,stack,prefix".
func (n NetItem) String() string {
	if n.kind == KindPayload {
		return n.payload
	}
	return fmt.Sprintf(scalarFormat, n.netID, n.stack, n.prefix)
}

type jsonNetItem struct {
	NetID   int    `json:"netID"`
	Prefix  uint8  `json:"prefix"`
	Stack   int    `json:"stack"`
	Payload string `json:"payload,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n NetItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNetItem{
		NetID:   n.netID,
		Prefix:  n.prefix,
		Stack:   n.stack,
		Payload: n.payload,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded record has no live
// item. netID and stack outside the 32-bit range are ErrFormat.
func (n *NetItem) UnmarshalJSON(data []byte) error {
	var v jsonNetItem
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	netID, stack, err := checkScalars(v.NetID, v.Stack)
	if err != nil {
		return err
	}
	*n = New(netID, stack, v.Prefix)
	if v.Payload != "" {
		if err := checkPayload(v.Payload); err != nil {
			return err
		}
		n.kind = KindPayload
		n.payload = v.Payload
	}
	return nil
}
