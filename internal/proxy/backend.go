package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/wire"
)

// throttledMessage is the text Velocity/BungeeCord-style backends use to
// reject a reconnect that arrives before their own connection-throttle
// window has elapsed. Backends are free to send richer chat than Rift
// itself ever produces, so the refusal reason is decoded loosely here
// rather than through chat.Value.
const throttledMessage = "Connection throttled"

type backendChatReason struct {
	Text      string `json:"text"`
	Translate string `json:"translate"`
}

func (r backendChatReason) throttled() bool {
	return strings.Contains(r.Text, throttledMessage) || strings.Contains(r.Translate, throttledMessage)
}

const backendDialTimeout = 5 * time.Second
const backendLoginTimeout = 10 * time.Second

// bridgeToBackend dials the default backend, replays the original
// handshake and login start to it in plaintext (backends are expected to
// run in offline mode behind this proxy), then relays the backend's
// LoginSuccess or Disconnect back to the client. On LoginSuccess both
// sockets move to Play and are bridged with opaque byte pumps.
func (s *Server) bridgeToBackend(client *wire.CipherConn, hs protocol.Handshake, loginStart protocol.LoginStart, log zerolog.Logger) {
	backend, err := s.backends.Default()
	if err != nil {
		log.Warn().Err(err).Msg("no default backend configured")
		s.disconnectDuringLogin(client, "&cWe don't know where to send you!", log)
		return
	}
	log = log.With().Str("backend_id", backend.ID).Logger()

	conn, err := net.DialTimeout("tcp", backend.Address, backendDialTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("backend unreachable")
		s.disconnectDuringLogin(client, fmt.Sprintf("&cFailed to connect to %s!", backend.ID), log)
		return
	}
	defer conn.Close()

	// ip_forward and online_mode are carried in configuration as the
	// source declares them, but neither backend handshake augmentation
	// nor an offline-mode bypass is implemented: the handshake is
	// replayed to the backend unchanged, and the backend is expected to
	// run in offline mode behind this proxy.
	if err := hs.Encode(conn); err != nil {
		log.Warn().Err(err).Msg("failed to replay handshake to backend")
		return
	}
	if err := loginStart.Encode(conn); err != nil {
		log.Warn().Err(err).Msg("failed to replay login start to backend")
		return
	}

	_ = conn.SetReadDeadline(time.Now().Add(backendLoginTimeout))
	frame, err := wire.ReadFrame(conn)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read backend login reply")
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	switch frame.ID {
	case protocol.IDDisconnect:
		disconnect, err := protocol.DecodeDisconnect(frame.Payload)
		if err != nil {
			log.Warn().Err(err).Msg("malformed backend disconnect")
			return
		}
		var reason backendChatReason
		if err := json.Unmarshal([]byte(disconnect.Reason), &reason); err == nil && reason.throttled() {
			log.Warn().Msg("backend rejected connection: connection throttled")
		} else {
			log.Info().Str("reason", string(disconnect.Reason)).Msg("backend refused connection")
		}
		_ = disconnect.Encode(client)
		return

	case protocol.IDLoginSuccess:
		success, err := protocol.DecodeLoginSuccess(frame.Payload)
		if err != nil {
			log.Warn().Err(err).Msg("malformed backend login success")
			return
		}
		// The original implementation constructed this packet but never
		// forwarded it to the client; doing so here is what actually
		// completes the login phase on the client's side.
		if err := success.Encode(client); err != nil {
			log.Warn().Err(err).Msg("failed to forward login success")
			return
		}

	default:
		log.Warn().Int32("id", int32(frame.ID)).Msg("unexpected packet from backend during login")
		return
	}

	s.playerCount.Add(1)
	defer s.playerCount.Add(-1)

	log.Info().Msg("entering play, bridging connection")
	pumpBytes(client, conn, log)
}

// pumpBytes forwards bytes in both directions until either side closes or
// errors. Play-phase packet contents are never inspected: the proxy has
// no business decoding NBT/entity state it doesn't route on.
func pumpBytes(client *wire.CipherConn, backend net.Conn, log zerolog.Logger) {
	done := make(chan struct{}, 2)

	go func() {
		_, _ = io.Copy(backend, client)
		done <- struct{}{}
	}()
	go func() {
		_, _ = io.Copy(client, backend)
		done <- struct{}{}
	}()

	<-done
	client.Close()
	backend.Close()
	<-done
	log.Debug().Msg("play bridge closed")
}
