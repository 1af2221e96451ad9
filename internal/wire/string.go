package wire

import (
	"fmt"
	"io"
)

// String is a UTF-8 string with a VarInt length prefix, the prefix
// counting bytes rather than characters.
type String string

func (v String) Encode(w io.Writer) error {
	data := []byte(v)
	if err := VarInt(len(data)).Encode(w); err != nil {
		return fmt.Errorf("write string length: %w", err)
	}
	_, err := w.Write(data)
	return err
}

// DecodeString reads a String from r. maxLen bounds the character count
// (0 disables the bound); a string with more bytes than 4*maxLen cannot
// possibly fit regardless of encoding, so that check runs before the read.
func DecodeString(r io.Reader, maxLen int) (String, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	if length < 0 {
		return "", fmt.Errorf("%w: negative string length", ErrMalformedFrame)
	}

	maxBytes := maxLen * 4
	if maxLen > 0 && int(length) > maxBytes {
		return "", fmt.Errorf("%w: byte length %d exceeds %d", ErrStringTooLong, length, maxBytes)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", fmt.Errorf("read string data: %w", err)
	}

	s := string(data)
	if maxLen > 0 && len([]rune(s)) > maxLen {
		return "", fmt.Errorf("%w: %d characters exceeds %d", ErrStringTooLong, len([]rune(s)), maxLen)
	}

	return String(s), nil
}
