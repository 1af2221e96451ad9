package wire

import (
	"encoding/binary"
	"io"
)

// Boolean is a single byte: 0x00 = false, 0x01 = true.
type Boolean bool

func (v Boolean) Encode(w io.Writer) error {
	var b byte
	if v {
		b = 0x01
	}
	_, err := w.Write([]byte{b})
	return err
}

func DecodeBoolean(r io.Reader) (Boolean, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// UShort is a big-endian unsigned 16-bit integer, used for the port field
// of Handshake.
type UShort uint16

func (v UShort) Encode(w io.Writer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeUShort(r io.Reader) (UShort, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return UShort(binary.BigEndian.Uint16(b[:])), nil
}

// Long is a big-endian signed 64-bit integer, used for the Ping/Pong
// payload.
type Long int64

func (v Long) Encode(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeLong(r io.Reader) (Long, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Long(binary.BigEndian.Uint64(b[:])), nil
}

// ByteArray is a VarInt length-prefixed blob, used for the RSA-encrypted
// fields of the login encryption exchange.
type ByteArray []byte

func (v ByteArray) Encode(w io.Writer) error {
	if err := VarInt(len(v)).Encode(w); err != nil {
		return err
	}
	_, err := w.Write(v)
	return err
}

// DecodeByteArray reads a VarInt-prefixed byte array, rejecting negative
// or implausibly large lengths so a hostile length prefix can't force an
// unbounded allocation.
func DecodeByteArray(r io.Reader, maxLen int) (ByteArray, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if length < 0 || (maxLen > 0 && int(length) > maxLen) {
		return nil, ErrMalformedFrame
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}
