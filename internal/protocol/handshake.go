package protocol

import (
	"fmt"
	"io"

	"github.com/riftmc/rift/internal/wire"
)

// Handshake is the single C->S Handshaking packet (id 0x00) that opens
// every connection and selects whether it continues into Status or Login.
type Handshake struct {
	ProtocolVersion wire.VarInt
	ServerAddress   wire.String
	ServerPort      wire.UShort
	NextState       wire.VarInt
}

const handshakePacketID = 0x00

// DecodeHandshake reads a Handshake from an already-framed packet payload
// whose id has been confirmed to be handshakePacketID.
func DecodeHandshake(payload []byte) (Handshake, error) {
	buf := wire.NewReader(payload)

	version, err := buf.ReadVarInt()
	if err != nil {
		return Handshake{}, fmt.Errorf("%w: protocol version: %v", ErrInvalidHandshake, err)
	}
	address, err := buf.ReadString(255)
	if err != nil {
		return Handshake{}, fmt.Errorf("%w: server address: %v", ErrInvalidHandshake, err)
	}
	port, err := buf.ReadUShort()
	if err != nil {
		return Handshake{}, fmt.Errorf("%w: server port: %v", ErrInvalidHandshake, err)
	}
	next, err := buf.ReadVarInt()
	if err != nil {
		return Handshake{}, fmt.Errorf("%w: next state: %v", ErrInvalidHandshake, err)
	}
	if next != NextStateStatus && next != NextStateLogin {
		return Handshake{}, fmt.Errorf("%w: next state %d", ErrInvalidHandshake, next)
	}

	return Handshake{
		ProtocolVersion: version,
		ServerAddress:   address,
		ServerPort:      port,
		NextState:       next,
	}, nil
}

// Encode writes h back out as a Handshake packet frame, used by the
// backend bridge to replay the original handshake to the chosen backend.
func (h Handshake) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteVarInt(h.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(h.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUShort(h.ServerPort); err != nil {
		return err
	}
	if err := buf.WriteVarInt(h.NextState); err != nil {
		return err
	}
	return wire.WriteFrame(w, handshakePacketID, buf.Bytes())
}
