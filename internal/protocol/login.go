package protocol

import (
	"fmt"
	"io"

	"github.com/riftmc/rift/internal/wire"
)

const (
	loginStartPacketID         = 0x00
	disconnectPacketID         = 0x00
	encryptionRequestPacketID  = 0x01
	encryptionResponsePacketID = 0x01
	loginSuccessPacketID       = 0x02
)

// maxEncryptedFieldLen bounds the byte arrays of the encryption exchange:
// a 2048-bit PKCS1v15 ciphertext is 256 bytes and the key's DER encoding
// 294, so 512 leaves headroom for both; a longer length prefix is rejected.
const maxEncryptedFieldLen = 512

// LoginStart is the C->S packet that opens the Login phase with the
// player's chosen username.
type LoginStart struct {
	Name wire.String
}

func DecodeLoginStart(payload []byte) (LoginStart, error) {
	buf := wire.NewReader(payload)
	name, err := buf.ReadString(16)
	if err != nil {
		return LoginStart{}, fmt.Errorf("%w: login start name: %v", ErrUnexpectedPacket, err)
	}
	return LoginStart{Name: name}, nil
}

func (p LoginStart) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteString(p.Name); err != nil {
		return err
	}
	return wire.WriteFrame(w, loginStartPacketID, buf.Bytes())
}

// EncryptionRequest is the S->C packet that begins the encryption
// handshake: an (ignorable by modern clients) server id, the proxy's DER
// public key, and a random verify token the client must echo back
// encrypted.
type EncryptionRequest struct {
	ServerID    wire.String
	PublicKey   wire.ByteArray
	VerifyToken wire.ByteArray
}

// DecodeEncryptionRequest reads an EncryptionRequest. The server never
// decodes one of its own packets; this exists for client-side tooling and
// tests.
func DecodeEncryptionRequest(payload []byte) (EncryptionRequest, error) {
	buf := wire.NewReader(payload)
	id, err := buf.ReadString(20)
	if err != nil {
		return EncryptionRequest{}, fmt.Errorf("%w: encryption request server id: %v", ErrUnexpectedPacket, err)
	}
	pub, err := buf.ReadByteArray(maxEncryptedFieldLen)
	if err != nil {
		return EncryptionRequest{}, fmt.Errorf("%w: encryption request public key: %v", ErrUnexpectedPacket, err)
	}
	token, err := buf.ReadByteArray(maxEncryptedFieldLen)
	if err != nil {
		return EncryptionRequest{}, fmt.Errorf("%w: encryption request verify token: %v", ErrUnexpectedPacket, err)
	}
	return EncryptionRequest{ServerID: id, PublicKey: pub, VerifyToken: token}, nil
}

func (p EncryptionRequest) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return err
	}
	return wire.WriteFrame(w, encryptionRequestPacketID, buf.Bytes())
}

// EncryptionResponse is the C->S reply: the client's 16-byte AES shared
// secret and the verify token, both RSA-PKCS1v15 encrypted under the
// proxy's public key.
type EncryptionResponse struct {
	SharedSecret wire.ByteArray
	VerifyToken  wire.ByteArray
}

func DecodeEncryptionResponse(payload []byte) (EncryptionResponse, error) {
	buf := wire.NewReader(payload)
	secret, err := buf.ReadByteArray(maxEncryptedFieldLen)
	if err != nil {
		return EncryptionResponse{}, fmt.Errorf("%w: encrypted secret: %v", ErrUnexpectedPacket, err)
	}
	token, err := buf.ReadByteArray(maxEncryptedFieldLen)
	if err != nil {
		return EncryptionResponse{}, fmt.Errorf("%w: encrypted token: %v", ErrUnexpectedPacket, err)
	}
	return EncryptionResponse{SharedSecret: secret, VerifyToken: token}, nil
}

// LoginSuccess terminates the Login phase and transitions both endpoints
// to Play. The proxy never originates this packet itself — it is read
// from the backend and relayed, encrypted, to the client.
type LoginSuccess struct {
	UUID     wire.String
	Username wire.String
}

func DecodeLoginSuccess(payload []byte) (LoginSuccess, error) {
	buf := wire.NewReader(payload)
	uuid, err := buf.ReadString(36)
	if err != nil {
		return LoginSuccess{}, fmt.Errorf("%w: login success uuid: %v", ErrUnexpectedPacket, err)
	}
	name, err := buf.ReadString(16)
	if err != nil {
		return LoginSuccess{}, fmt.Errorf("%w: login success name: %v", ErrUnexpectedPacket, err)
	}
	return LoginSuccess{UUID: uuid, Username: name}, nil
}

func (p LoginSuccess) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteString(p.UUID); err != nil {
		return err
	}
	if err := buf.WriteString(p.Username); err != nil {
		return err
	}
	return wire.WriteFrame(w, loginSuccessPacketID, buf.Bytes())
}

// Disconnect is the S->C Login-phase packet carrying a JSON chat reason;
// it always closes the connection immediately after being written.
type Disconnect struct {
	Reason wire.String // pre-serialized chat JSON
}

func (p Disconnect) Encode(w io.Writer) error {
	buf := wire.NewWriter()
	if err := buf.WriteString(p.Reason); err != nil {
		return err
	}
	return wire.WriteFrame(w, disconnectPacketID, buf.Bytes())
}

func DecodeDisconnect(payload []byte) (Disconnect, error) {
	buf := wire.NewReader(payload)
	reason, err := buf.ReadString(0)
	if err != nil {
		return Disconnect{}, fmt.Errorf("%w: disconnect reason: %v", ErrUnexpectedPacket, err)
	}
	return Disconnect{Reason: reason}, nil
}
