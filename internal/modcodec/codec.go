// Package modcodec stores extension items as a single base64 token: the
// item is CBOR encoded, gzip compressed, then base64 encoded. Standard base64
// never produces a comma, so tokens sit safely next to "netID,stack,prefix"
// records in the same column.
package modcodec

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/osse101/netitem/internal/netitem"
)

var (
	ErrUnsupportedItem = errors.New(ErrMsgUnsupportedItem)
	ErrTokenTooLarge   = errors.New(ErrMsgTokenTooLarge)
)

// Codec implements netitem.ExtensionCodec.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
	log *slog.Logger
}

var _ netitem.ExtensionCodec = (*Codec)(nil)

// New creates a Codec. A nil logger falls back to slog.Default().
func New(log *slog.Logger) (*Codec, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor enc mode: %w", err)
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
		MaxMapPairs:    4096,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cbor dec mode: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Codec{enc: enc, dec: dec, log: log}, nil
}

// Encode serializes a *ModItem to a token.
func (c *Codec) Encode(item netitem.Item) (string, error) {
	mod, ok := item.(*ModItem)
	if !ok || mod == nil {
		return "", fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
	}

	body, err := c.enc.Marshal(mod)
	if err != nil {
		return "", fmt.Errorf("marshal item: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return "", fmt.Errorf("compress item: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress item: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reads a token produced by Encode. Failures are logged and reported
// as an absent item.
func (c *Codec) Decode(token string) (netitem.Item, bool) {
	item, err := c.decode(token)
	if err != nil {
		c.log.Warn(LogMsgLoadItemFailed, "token", token, "error", err)
		return nil, false
	}
	return item, true
}

func (c *Codec) decode(token string) (*ModItem, error) {
	if len(token) > MaxTokenBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTokenTooLarge, len(token))
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()

	body, err := io.ReadAll(io.LimitReader(zr, MaxTokenBytes+1))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	if len(body) > MaxTokenBytes {
		return nil, fmt.Errorf("%w: decompressed body", ErrTokenTooLarge)
	}

	var item ModItem
	if err := c.dec.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	return &item, nil
}
