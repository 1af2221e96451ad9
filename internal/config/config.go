// Package config loads and defaults the proxy's TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Backend is one entry of the [[servers]] table: a named backend the
// proxy can bridge a client to.
type Backend struct {
	ID      string `toml:"id"`
	Address string `toml:"address"`
	Default bool   `toml:"default"`
}

// Config is the proxy's full configuration schema, matching the original
// implementation's table layout one-to-one.
type Config struct {
	Bind       string    `toml:"bind"`
	IPForward  bool      `toml:"ip_forward"`
	OnlineMode bool      `toml:"online_mode"`
	MaxPlayers int       `toml:"max_players"`
	MOTD       string    `toml:"motd"`
	Favicon    string    `toml:"favicon,omitempty"`
	Servers    []Backend `toml:"servers"`
}

// Default returns the configuration a freshly unpacked proxy ships with:
// a single default backend at localhost:25565 so the proxy is immediately
// routable.
func Default() Config {
	return Config{
		Bind:       "0.0.0.0:25570",
		IPForward:  true,
		OnlineMode: true,
		MaxPlayers: 20,
		MOTD:       "&3Enter the rift.",
		Servers: []Backend{
			{ID: "lobby", Address: "localhost:25565", Default: true},
		},
	}
}

// Load reads path, writing it back out with Default() contents first if
// it does not exist.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// DefaultBackend returns the Backend marked default=true. Per the data
// model's invariant, a config with none is not routable.
func (c Config) DefaultBackend() (Backend, bool) {
	for _, s := range c.Servers {
		if s.Default {
			return s, true
		}
	}
	return Backend{}, false
}
