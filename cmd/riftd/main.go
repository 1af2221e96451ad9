// Command riftd runs the Rift Minecraft Java Edition reverse proxy.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/riftmc/rift/internal/config"
	"github.com/riftmc/rift/internal/favicon"
	"github.com/riftmc/rift/internal/proxy"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "riftd",
		Short: "Rift is a reverse proxy for Minecraft Java Edition servers",
		RunE:  run,
	}

	root.Flags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML configuration file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	if cfg.Favicon == "" {
		if uri, err := favicon.LoadPNG("favicon.png"); err == nil {
			cfg.Favicon = uri
		}
	}

	srv, err := proxy.New(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	return srv.ListenAndServe()
}
