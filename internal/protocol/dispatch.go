package protocol

import (
	"fmt"

	"github.com/riftmc/rift/internal/wire"
)

// Expect checks that an already-read frame's id matches want,
// returning ErrUnexpectedPacket otherwise. Every Handshaking/Status/Login
// step reads exactly one specific packet id next; this centralizes that
// check instead of repeating it at each call site.
func Expect(frame wire.Frame, want wire.VarInt) error {
	if frame.ID != want {
		return fmt.Errorf("%w: got id 0x%02x, want 0x%02x", ErrUnexpectedPacket, frame.ID, want)
	}
	return nil
}

// Packet ids, exported for callers (internal/proxy) that need to read a
// frame and branch on id before decoding its body.
const (
	IDHandshake           = handshakePacketID
	IDStatusRequest       = statusRequestPacketID
	IDStatusResponse      = statusResponsePacketID
	IDPing                = pingPacketID
	IDPong                = pongPacketID
	IDLoginStart          = loginStartPacketID
	IDDisconnect          = disconnectPacketID
	IDEncryptionRequest   = encryptionRequestPacketID
	IDEncryptionResponse  = encryptionResponsePacketID
	IDLoginSuccess        = loginSuccessPacketID
)
