package proxy

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/backendpool"
	"github.com/riftmc/rift/internal/config"
	"github.com/riftmc/rift/internal/mcrypto"
	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/session"
	"github.com/riftmc/rift/internal/wire"
)

func testServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	keys, err := mcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	return &Server{
		cfg:      cfg,
		backends: backendpool.New(cfg),
		keys:     keys,
		sessions: session.NewClient(),
		log:      zerolog.Nop(),
	}
}

func TestHandleStatusRoundTrip(t *testing.T) {
	srv := testServer(t, config.Config{MOTD: "&3Enter the rift.", MaxPlayers: 20})

	client, server := net.Pipe()
	defer client.Close()

	hs := protocol.Handshake{ProtocolVersion: 754, ServerAddress: "play.example.com", ServerPort: 25565, NextState: protocol.NextStateStatus}

	go func() {
		cw := wire.NewCipherConn(server)
		srv.handleStatus(cw, hs, zerolog.Nop())
		server.Close()
	}()

	if err := wire.WriteFrame(client, protocol.IDStatusRequest, nil); err != nil {
		t.Fatalf("write status request: %v", err)
	}

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	frame, err := wire.ReadFrame(client)
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	if frame.ID != protocol.IDStatusResponse {
		t.Fatalf("frame id = %d, want status response", frame.ID)
	}

	buf := wire.NewReader(frame.Payload)
	jsonStr, err := buf.ReadString(0)
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}

	var payload statusPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		t.Fatalf("unmarshal status payload: %v", err)
	}
	if payload.Description.Text != "§3Enter the rift." {
		t.Errorf("description = %q, want colorized motd", payload.Description.Text)
	}
	if payload.Players.Max != 20 {
		t.Errorf("players.max = %d, want 20", payload.Players.Max)
	}
	if payload.Version.Protocol != 754 {
		t.Errorf("version.protocol = %d, want 754 (echoed from handshake)", payload.Version.Protocol)
	}

	if err := wire.WriteFrame(client, protocol.IDPing, mustEncodeLong(t, 42)); err != nil {
		t.Fatalf("write ping: %v", err)
	}

	frame, err = wire.ReadFrame(client)
	if err != nil {
		t.Fatalf("ReadFrame() for pong error = %v", err)
	}
	pong, err := protocol.DecodePing(frame.Payload) // Pong shares Ping's wire shape
	if err != nil {
		t.Fatalf("decode pong: %v", err)
	}
	if pong.Payload != 42 {
		t.Errorf("pong payload = %d, want 42", pong.Payload)
	}
}

func mustEncodeLong(t *testing.T, v wire.Long) []byte {
	t.Helper()
	buf := wire.NewWriter()
	if err := buf.WriteLong(v); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
