package protocol

import (
	"fmt"
	"io"

	"github.com/riftmc/rift/internal/wire"
)

const (
	statusRequestPacketID  = 0x00
	statusResponsePacketID = 0x00
	pingPacketID           = 0x01
	pongPacketID           = 0x01
)

// DecodeStatusRequest validates a C->S Status Request (id 0x00, no body).
func DecodeStatusRequest(payload []byte) error {
	if len(payload) != 0 {
		return fmt.Errorf("%w: status request carries a body", ErrUnexpectedPacket)
	}
	return nil
}

// StatusResponse is the S->C Status Response carrying the raw JSON
// server-list-ping document.
type StatusResponse struct {
	JSON wire.String
}

func (r StatusResponse) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteString(r.JSON); err != nil {
		return err
	}
	return wire.WriteFrame(w, statusResponsePacketID, buf.Bytes())
}

// Ping/Pong both carry an 8-byte opaque payload the client uses to
// measure round-trip latency; the proxy echoes it unchanged.
type Ping struct {
	Payload wire.Long
}

func DecodePing(payload []byte) (Ping, error) {
	buf := wire.NewReader(payload)
	v, err := buf.ReadLong()
	if err != nil {
		return Ping{}, fmt.Errorf("%w: ping payload: %v", ErrUnexpectedPacket, err)
	}
	return Ping{Payload: v}, nil
}

type Pong struct {
	Payload wire.Long
}

func (p Pong) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteLong(p.Payload); err != nil {
		return err
	}
	return wire.WriteFrame(w, pongPacketID, buf.Bytes())
}
