package netitem

import "errors"

// Error message constants. Tests match on these with assert.Contains.
const (
	ErrMsgInvalidArgument   = "invalid argument"
	ErrMsgFormat            = "invalid item format"
	ErrMsgInvalidPayload    = "invalid payload token"
	ErrMsgWrongSectionCount = "string does not contain right sections count"
	ErrMsgNilString         = "str is nil"
	ErrMsgPayloadHasComma   = "payload contains a section separator"
	ErrMsgPayloadEmpty      = "payload is empty"
	ErrMsgNoExtensionCodec  = "no extension codec configured"
	ErrMsgOutOfRange        = "out of 32-bit range"
)

var (
	// ErrInvalidArgument is returned when the parse input is absent.
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// ErrFormat is returned for a wrong section count or a malformed numeric section.
	ErrFormat = errors.New(ErrMsgFormat)

	// ErrInvalidPayload is returned when an extension token cannot be carried on the wire.
	ErrInvalidPayload = errors.New(ErrMsgInvalidPayload)
)
