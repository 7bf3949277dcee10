package netitem

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Codec converts between live items, records and their wire strings.
// It is safe for concurrent use as long as the injected collaborators are.
type Codec struct {
	ext    ExtensionCodec
	engine Engine
	log    *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithEngine materializes live items for records built from scalars.
func WithEngine(engine Engine) Option {
	return func(c *Codec) {
		c.engine = engine
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Codec) {
		c.log = log
	}
}

// NewCodec creates a Codec backed by the given extension codec.
func NewCodec(ext ExtensionCodec, opts ...Option) *Codec {
	c := &Codec{ext: ext}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// FromScalars builds a scalar-only record. When netID is not zero and an
// engine is configured, the record also carries a materialized live item:
// engine defaults for netID, then the prefix, then the stack.
func (c *Codec) FromScalars(netID, stack int32, prefix uint8) NetItem {
	rec := New(netID, stack, prefix)
	if netID == 0 || c.engine == nil {
		return rec
	}
	item := c.engine.NewItem()
	item.SetDefaults(int(netID))
	item.ApplyPrefix(prefix)
	item.SetStack(int(stack))
	rec.item = item
	return rec
}

// Convert turns a live item of unknown origin into a record.
// Extension items are encoded to a payload token; everything else keeps
// only its scalar fields, which must fit the 32-bit wire range.
func (c *Codec) Convert(item Item) (NetItem, error) {
	if item == nil {
		return Empty, nil
	}
	if !item.IsExtension() {
		netID, stack, err := checkScalars(item.NetID(), item.Stack())
		if err != nil {
			return Empty, err
		}
		return New(netID, stack, item.Prefix()), nil
	}
	if c.ext == nil {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidPayload, ErrMsgNoExtensionCodec)
	}

	token, err := c.ext.Encode(item)
	if err != nil {
		return Empty, fmt.Errorf("encode extension item %d: %w", item.NetID(), err)
	}
	if err := checkPayload(token); err != nil {
		return Empty, err
	}
	return fromPayload(token, item), nil
}

// Parse reads a record from its wire string.
func (c *Codec) Parse(s string) (NetItem, error) {
	return c.ParseNullable(&s)
}

// ParseNullable is Parse for inputs that may be absent, such as nullable
// columns or JSON fields. A nil input is ErrInvalidArgument.
//
// Sections are matched in order:
//   - 1 section: payload token
//   - 3 sections, first not an integer: payload token in the first section
//   - 3 sections, first an integer: netID, stack, prefix
//   - anything else: ErrFormat
func (c *Codec) ParseNullable(s *string) (NetItem, error) {
	if s == nil {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidArgument, ErrMsgNilString)
	}

	sections := split(*s)
	switch {
	case len(sections) == PayloadSections:
		return c.decodePayload(sections[0]), nil

	case len(sections) == ScalarSections:
		netID, err := parseInt32(sections[0])
		if err != nil {
			c.log.Debug(LogMsgLegacyFallback, "section", sections[0])
			return c.decodePayload(sections[0]), nil
		}
		stack, err := parseInt32(sections[1])
		if err != nil {
			return Empty, fmt.Errorf("%w: stack %q: %w", ErrFormat, sections[1], err)
		}
		prefix, err := strconv.ParseUint(strings.TrimSpace(sections[2]), 10, 8)
		if err != nil {
			return Empty, fmt.Errorf("%w: prefix %q: %w", ErrFormat, sections[2], err)
		}
		return c.FromScalars(netID, stack, uint8(prefix)), nil

	default:
		return Empty, fmt.Errorf("%w: %s (got %d)", ErrFormat, ErrMsgWrongSectionCount, len(sections))
	}
}

// decodePayload wraps the decoded item as a payload record. A token the
// extension codec cannot read yields an empty slot.
func (c *Codec) decodePayload(token string) NetItem {
	if c.ext == nil {
		c.log.Warn(LogMsgPayloadAbsent, "reason", ErrMsgNoExtensionCodec)
		return Empty
	}
	item, ok := c.ext.Decode(token)
	if !ok || item == nil {
		c.log.Debug(LogMsgPayloadAbsent, "token", token)
		return Empty
	}
	return fromPayload(token, item)
}

// Classify reports which shape Parse reads s as, without decoding payloads
// or validating the stack and prefix sections. ok is false for a wrong
// section count.
func Classify(s string) (kind Kind, ok bool) {
	sections := split(s)
	switch len(sections) {
	case PayloadSections:
		return KindPayload, true
	case ScalarSections:
		if _, err := parseInt32(sections[0]); err != nil {
			return KindPayload, true
		}
		return KindScalar, true
	default:
		return KindScalar, false
	}
}

// split treats the empty string as having no sections.
func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, SectionSeparator)
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func checkPayload(token string) error {
	if token == "" {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, ErrMsgPayloadEmpty)
	}
	if strings.Contains(token, SectionSeparator) {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, ErrMsgPayloadHasComma)
	}
	return nil
}
