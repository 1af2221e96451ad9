package protocol_test

import (
	"bytes"
	"testing"

	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/wire"
)

func TestEncryptionResponseDecode(t *testing.T) {
	resp := struct {
		secret, token wire.ByteArray
	}{secret: make([]byte, 128), token: make([]byte, 128)}

	buf := wire.NewWriter()
	if err := buf.WriteByteArray(resp.secret); err != nil {
		t.Fatal(err)
	}
	if err := buf.WriteByteArray(resp.token); err != nil {
		t.Fatal(err)
	}

	got, err := protocol.DecodeEncryptionResponse(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeEncryptionResponse() error = %v", err)
	}
	if len(got.SharedSecret) != 128 || len(got.VerifyToken) != 128 {
		t.Errorf("unexpected field lengths: %d, %d", len(got.SharedSecret), len(got.VerifyToken))
	}
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	p := protocol.LoginSuccess{UUID: "N/A", Username: "Alice"}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	frame, err := wire.ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}

	got, err := protocol.DecodeLoginSuccess(frame.Payload)
	if err != nil {
		t.Fatalf("DecodeLoginSuccess() error = %v", err)
	}
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}
