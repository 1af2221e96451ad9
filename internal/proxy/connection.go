package proxy

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/wire"
)

// handshakeReadTimeout bounds how long a freshly accepted socket may sit
// idle before sending its Handshake packet. Replaces the source's
// three-attempt polling read with a single deadline-bounded read.
const handshakeReadTimeout = 10 * time.Second

func (s *Server) handleConnection(conn net.Conn) {
	addr := conn.RemoteAddr().String()
	log := s.log.With().Str("remote", addr).Logger()
	defer conn.Close()

	cw := wire.NewCipherConn(conn)

	if err := conn.SetReadDeadline(time.Now().Add(handshakeReadTimeout)); err != nil {
		log.Warn().Err(err).Msg("failed to set handshake read deadline")
	}

	frame, err := wire.ReadFrame(cw)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read handshake frame")
		return
	}
	if err := protocol.Expect(frame, protocol.IDHandshake); err != nil {
		log.Debug().Err(err).Msg("first packet was not a handshake")
		return
	}

	hs, err := protocol.DecodeHandshake(frame.Payload)
	if err != nil {
		log.Debug().Err(err).Msg("malformed handshake")
		return
	}

	_ = conn.SetReadDeadline(time.Time{})

	log.Info().
		Int32("protocol_version", int32(hs.ProtocolVersion)).
		Str("via_address", string(hs.ServerAddress)).
		Msg("client handshake")

	switch hs.NextState {
	case protocol.NextStateStatus:
		s.handleStatus(cw, hs, log)
	case protocol.NextStateLogin:
		s.handleLogin(cw, hs, log)
	default:
		log.Debug().Msg(fmt.Sprintf("unreachable next state %d survived DecodeHandshake", hs.NextState))
	}
}
