// Package proxy implements the server core: the accept loop, the
// Handshake-to-Status-or-Login state machine, and the backend bridge that
// follows a successful login.
package proxy

import (
	"fmt"
	"net"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/backendpool"
	"github.com/riftmc/rift/internal/config"
	"github.com/riftmc/rift/internal/mcrypto"
	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/session"
)

// ProtocolName is reported in the Status Response's version.name field.
const ProtocolName = "Rift"

// Server is the proxy's long-lived core: one RSA key pair shared by every
// connection's login handshake, the configured backend pool, and a count
// of currently-bridged players.
type Server struct {
	cfg      config.Config
	backends backendpool.Pool
	keys     *mcrypto.KeyPair
	sessions *session.Client
	log      zerolog.Logger

	playerCount atomic.Int32
}

// New builds a Server from configuration, generating its RSA key pair
// immediately so the first connection never waits on it.
func New(cfg config.Config, log zerolog.Logger) (*Server, error) {
	keys, err := mcrypto.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate server rsa key: %w", err)
	}

	return &Server{
		cfg:      cfg,
		backends: backendpool.New(cfg),
		keys:     keys,
		sessions: session.NewClient(),
		log:      log,
	}, nil
}

// ListenAndServe binds cfg.Bind and runs the accept loop until the
// listener errors or is closed. Each accepted connection runs in its own
// goroutine; connections never share mutable state with each other.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Bind)
	if err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrBindFailure, err)
	}
	defer ln.Close()

	s.log.Info().Str("addr", s.cfg.Bind).Msg("listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}

		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.SetNoDelay(true)
		}

		go s.handleConnection(conn)
	}
}
