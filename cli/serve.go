package cli

import (
	"github.com/spf13/cobra"

	"github.com/watzon/huebloom/config"
	"github.com/watzon/huebloom/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the palette web UI and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if serveAddr != "" {
			cfg.WithAddr(serveAddr)
		}

		app := server.New(cfg, newLogger(cfg.LogLevel))
		return app.Serve()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides HUEBLOOM_ADDR)")
}
