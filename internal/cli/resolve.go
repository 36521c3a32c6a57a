package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeade/eximg/internal/config"
	"github.com/dmeade/eximg/internal/logging"
	"github.com/dmeade/eximg/internal/output"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>...",
	Short: "Resolve exercise identifiers to image locations",
	Long: `Resolve one or more exercise identifiers to their current image
locations: a locally cached file, a remote URL, or nothing. Identifiers
that cannot be served render as "(no image)" and set exit code 1.`,
	Args: cobra.MinimumNArgs(1),
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

		locations := svc.ResolveAll(cmd.Context(), args)

		if err := output.WriteResults(args, locations, flagFormat, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		for _, location := range locations {
			if location == "" {
				exitCode = ExitNoImage
				break
			}
		}
		return nil
	},
}

func init() {
	addResolverFlags(resolveCmd)
	resolveCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json)")
	resolveCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
