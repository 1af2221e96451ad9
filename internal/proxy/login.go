package proxy

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/chat"
	"github.com/riftmc/rift/internal/mcrypto"
	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/wire"
)

const (
	loginReadTimeout    = 10 * time.Second
	sessionCheckTimeout = 10 * time.Second
)

// handleLogin runs the Login phase to completion: EncryptionRequest,
// EncryptionResponse verification, cipher install, Mojang authentication,
// and (on success) handoff to the backend bridge.
func (s *Server) handleLogin(cw *wire.CipherConn, hs protocol.Handshake, log zerolog.Logger) {
	_ = cw.SetReadDeadline(time.Now().Add(loginReadTimeout))

	frame, err := wire.ReadFrame(cw)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read login start")
		return
	}
	if err := protocol.Expect(frame, protocol.IDLoginStart); err != nil {
		log.Debug().Err(err).Msg("expected login start")
		return
	}
	loginStart, err := protocol.DecodeLoginStart(frame.Payload)
	if err != nil {
		log.Debug().Err(err).Msg("malformed login start")
		return
	}
	log = log.With().Str("player", string(loginStart.Name)).Logger()
	log.Debug().Msg("initiating login")

	verifyToken, err := mcrypto.NewVerifyToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verify token")
		return
	}

	encReq := protocol.EncryptionRequest{
		ServerID:    "",
		PublicKey:   wire.ByteArray(s.keys.PublicDER),
		VerifyToken: wire.ByteArray(verifyToken),
	}
	if err := encReq.Encode(cw); err != nil {
		log.Debug().Err(err).Msg("failed to write encryption request")
		return
	}

	frame, err = wire.ReadFrame(cw)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read encryption response")
		return
	}
	if err := protocol.Expect(frame, protocol.IDEncryptionResponse); err != nil {
		log.Debug().Err(err).Msg("expected encryption response")
		return
	}
	encResp, err := protocol.DecodeEncryptionResponse(frame.Payload)
	if err != nil {
		log.Debug().Err(err).Msg("malformed encryption response")
		return
	}
	// The last login-phase read from the client is done; clear the deadline
	// so it does not cut off the Play bridge later.
	_ = cw.SetReadDeadline(time.Time{})

	decryptedToken, err := s.keys.Decrypt(encResp.VerifyToken)
	if err != nil || !mcrypto.VerifyTokenMatches(verifyToken, decryptedToken) {
		log.Warn().Msg("verify token mismatch")
		s.disconnectDuringLogin(cw, "&cInvalid verify token.", log)
		return
	}

	secret, err := s.keys.Decrypt(encResp.SharedSecret)
	if err != nil {
		log.Warn().Err(err).Msg("failed to decrypt shared secret")
		s.disconnectDuringLogin(cw, "&cInvalid encryption response.", log)
		return
	}
	// A conformant client sends exactly 16 bytes; anything else is a
	// protocol error to surface, not silently truncate.
	if len(secret) != 16 {
		log.Warn().Int("secret_len", len(secret)).Msg("shared secret was not 16 bytes")
		s.disconnectDuringLogin(cw, "&cInvalid encryption response.", log)
		return
	}

	if err := cw.InstallSecret(secret); err != nil {
		log.Error().Err(err).Msg("failed to install cipher")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionCheckTimeout)
	identity, err := s.sessions.HasJoined(ctx, string(loginStart.Name), "", secret, s.keys.PublicDER)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("mojang authentication failed")
		s.disconnectDuringLogin(cw, "&cAuthentication failed.", log)
		return
	}

	log.Info().Str("uuid", identity.UUID).Msg("player authenticated")
	s.bridgeToBackend(cw, hs, loginStart, log)
}

// disconnectDuringLogin sends a Disconnect with a colorized chat reason.
// It is encrypted for the Mojang-auth and backend-bridge callers; on the
// verify-token and shared-secret failure paths the cipher is not yet
// installed, so the Disconnect is written in plaintext.
func (s *Server) disconnectDuringLogin(cw *wire.CipherConn, reason string, log zerolog.Logger) {
	body := fmt.Sprintf(`{"text":%q}`, chat.Colorize(reason))
	d := protocol.Disconnect{Reason: wire.String(body)}
	if err := d.Encode(cw); err != nil {
		log.Debug().Err(err).Msg("failed to write disconnect")
	}
}
