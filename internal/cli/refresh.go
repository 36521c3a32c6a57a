package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeade/eximg/internal/config"
	"github.com/dmeade/eximg/internal/logging"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <identifier>",
	Short: "Discard an identifier's cache entry and re-resolve it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		log := logging.New(cfg.LogLevel)
		svc, err := buildService(cfg, log)
		if err != nil {
			return err
		}

		location := svc.Refresh(cmd.Context(), args[0])
		if location == "" {
			fmt.Fprintf(os.Stdout, "%s  (no image)\n", args[0])
			exitCode = ExitNoImage
			return nil
		}
		fmt.Fprintf(os.Stdout, "%s  %s\n", args[0], location)
		return nil
	},
}

func init() {
	addResolverFlags(refreshCmd)
}
