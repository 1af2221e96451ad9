// Package backendpool holds the configured backend servers a connection
// can be bridged to and picks the default backend each new connection is
// bridged to.
package backendpool

import (
	"fmt"
	"math/rand/v2"

	"github.com/riftmc/rift/internal/config"
	"github.com/riftmc/rift/internal/protocol"
)

// Descriptor is a routable backend: an id, a dial address, and whether it
// is eligible to be picked as the default.
type Descriptor struct {
	ID      string
	Address string
	Default bool
}

// Pool is an immutable snapshot of the configured backends, safe to share
// across connection goroutines.
type Pool struct {
	backends []Descriptor
}

// New builds a Pool from the loaded configuration.
func New(cfg config.Config) Pool {
	backends := make([]Descriptor, len(cfg.Servers))
	for i, s := range cfg.Servers {
		backends[i] = Descriptor{ID: s.ID, Address: s.Address, Default: s.Default}
	}
	return Pool{backends: backends}
}

// Default picks one of the backends marked default=true, chosen uniformly
// at random when more than one qualifies (load-spreading across an
// identically-named pool of lobby servers, for instance).
// ErrNoDefaultBackend is returned if none is configured.
func (p Pool) Default() (Descriptor, error) {
	var candidates []Descriptor
	for _, b := range p.backends {
		if b.Default {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return Descriptor{}, protocol.ErrNoDefaultBackend
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// ByID looks up a backend by its configured id.
func (p Pool) ByID(id string) (Descriptor, error) {
	for _, b := range p.backends {
		if b.ID == id {
			return b, nil
		}
	}
	return Descriptor{}, fmt.Errorf("no backend with id %q", id)
}

// Len reports how many backends are configured.
func (p Pool) Len() int { return len(p.backends) }
