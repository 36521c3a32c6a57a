package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmeade/eximg/internal/config"
	"github.com/dmeade/eximg/internal/logging"
	"github.com/dmeade/eximg/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP resolver service",
	Long: `Serve exposes image resolution over HTTP. It resolves identifiers
through the configured strategy, shares the same on-disk cache as the
CLI commands, and sweeps expired entries hourly while running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := buildOverrides()
		if flagServeAddr != "" {
			overrides["serveAddr"] = flagServeAddr
		}

		cfg, err := config.Load(overrides)
		if err != nil {
			return err
		}

		log := logging.New(cfg.LogLevel)

		svc, err := buildService(cfg, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(svc, cfg.TTL(), log)
		if err := srv.Run(ctx, cfg.Serve.Addr); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

func init() {
	addResolverFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (host:port)")
}
