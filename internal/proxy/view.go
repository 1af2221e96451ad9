package proxy

// View is an immutable snapshot of the server core's state, cheap to copy
// and safe to hand to collaborators (the status responder, a future
// command engine) without exposing the authoritative mutable state.
type View struct {
	ListenAddress string
	OnlinePlayers int
	MaxPlayers    int
	RSAPublicKey  []byte
}

func (s *Server) View() View {
	return View{
		ListenAddress: s.cfg.Bind,
		OnlinePlayers: int(s.playerCount.Load()),
		MaxPlayers:    s.cfg.MaxPlayers,
		RSAPublicKey:  s.keys.PublicDER,
	}
}
