package wire

import "errors"

// ErrMalformedVarInt is returned when a VarInt/VarLong does not terminate
// within its maximum byte count.
var ErrMalformedVarInt = errors.New("malformed varint")

// ErrMalformedFrame is returned by ReadFrame when the declared packet
// length is negative or implausibly large for the connection's framing
// rules.
var ErrMalformedFrame = errors.New("malformed packet frame")

// ErrStringTooLong is returned when a decoded string exceeds its maximum
// character length.
var ErrStringTooLong = errors.New("string exceeds maximum length")
