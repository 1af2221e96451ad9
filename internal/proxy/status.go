package proxy

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/riftmc/rift/internal/chat"
	"github.com/riftmc/rift/internal/protocol"
	"github.com/riftmc/rift/internal/wire"
)

const statusReadTimeout = 5 * time.Second

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type statusPlayers struct {
	Max    int  `json:"max"`
	Online int  `json:"online"`
	Sample []any `json:"sample"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusPayload struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
	Favicon     string            `json:"favicon,omitempty"`
}

// handleStatus answers the Server List Ping sequence: Request ->
// Response, then Ping -> Pong, using whatever protocol version the client
// announced in its Handshake.
func (s *Server) handleStatus(cw *wire.CipherConn, hs protocol.Handshake, log zerolog.Logger) {
	_ = cw.SetReadDeadline(time.Now().Add(statusReadTimeout))

	frame, err := wire.ReadFrame(cw)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read status request")
		return
	}
	if err := protocol.Expect(frame, protocol.IDStatusRequest); err != nil {
		log.Debug().Err(err).Msg("expected status request")
		return
	}
	if err := protocol.DecodeStatusRequest(frame.Payload); err != nil {
		log.Debug().Err(err).Msg("malformed status request")
		return
	}

	view := s.View()
	payload := statusPayload{
		Version:     statusVersion{Name: ProtocolName, Protocol: int32(hs.ProtocolVersion)},
		Players:     statusPlayers{Max: view.MaxPlayers, Online: view.OnlinePlayers, Sample: []any{}},
		Description: statusDescription{Text: chat.Colorize(s.cfg.MOTD)},
		Favicon:     s.cfg.Favicon,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal status response")
		return
	}

	resp := protocol.StatusResponse{JSON: wire.String(body)}
	if err := resp.Encode(cw); err != nil {
		log.Debug().Err(err).Msg("failed to write status response")
		return
	}

	frame, err = wire.ReadFrame(cw)
	if err != nil {
		// A server-list client may disconnect immediately after reading
		// the status response without pinging; that's not an error.
		return
	}
	if err := protocol.Expect(frame, protocol.IDPing); err != nil {
		log.Debug().Err(err).Msg("expected ping")
		return
	}
	ping, err := protocol.DecodePing(frame.Payload)
	if err != nil {
		log.Debug().Err(err).Msg("malformed ping")
		return
	}

	pong := protocol.Pong{Payload: ping.Payload}
	if err := pong.Encode(cw); err != nil {
		log.Debug().Err(err).Msg("failed to write pong")
	}
}
