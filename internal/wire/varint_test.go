package wire_test

import (
	"bytes"
	"testing"

	"github.com/riftmc/rift/internal/wire"
)

func TestVarIntEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    wire.VarInt
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"max single byte", 127, []byte{0x7f}},
		{"min two bytes", 128, []byte{0x80, 0x01}},
		{"255", 255, []byte{0xff, 0x01}},
		{"25565 (default MC port)", 25565, []byte{0xdd, 0xc7, 0x01}},
		{"max int32", 2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"negative one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"min int32", -2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.value.Encode(&buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.expected) {
				t.Errorf("Encode() = %v, want %v", buf.Bytes(), tt.expected)
			}
		})
	}
}

func TestVarIntDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected wire.VarInt
	}{
		{"zero", []byte{0x00}, 0},
		{"min two bytes", []byte{0x80, 0x01}, 128},
		{"25565", []byte{0xdd, 0xc7, 0x01}, 25565},
		{"max int32", []byte{0xff, 0xff, 0xff, 0xff, 0x07}, 2147483647},
		{"negative one", []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, -1},
		{"min int32", []byte{0x80, 0x80, 0x80, 0x80, 0x08}, -2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wire.DecodeVarInt(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeVarInt() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("DecodeVarInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []wire.VarInt{0, 1, 127, 128, 255, 25565, 2147483647, -1, -2147483648}

	for _, v := range values {
		var buf bytes.Buffer
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		got, err := wire.DecodeVarInt(&buf)
		if err != nil {
			t.Fatalf("DecodeVarInt() error = %v", err)
		}
		if got != v {
			t.Errorf("round trip: wrote %v, got %v", v, got)
		}
	}
}

func TestVarIntLen(t *testing.T) {
	tests := []struct {
		value    wire.VarInt
		expected int
	}{
		{0, 1}, {127, 1}, {128, 2}, {2097151, 3}, {2097152, 4}, {2147483647, 5}, {-1, 5},
	}
	for _, tt := range tests {
		if got := tt.value.Len(); got != tt.expected {
			t.Errorf("VarInt(%d).Len() = %d, want %d", tt.value, got, tt.expected)
		}
	}
}

func TestVarIntTooLong(t *testing.T) {
	input := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	_, err := wire.DecodeVarInt(bytes.NewReader(input))
	if err == nil {
		t.Error("DecodeVarInt() should error when more than 5 bytes are consumed")
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []wire.VarLong{0, 1, 127, 128, 9223372036854775807, -1, -9223372036854775808}

	for _, v := range values {
		var buf bytes.Buffer
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		got, err := wire.DecodeVarLong(&buf)
		if err != nil {
			t.Fatalf("DecodeVarLong() error = %v", err)
		}
		if got != v {
			t.Errorf("round trip: wrote %v, got %v", v, got)
		}
	}
}
