package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitNoImage      = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var rootCmd = &cobra.Command{
	Use:   "eximg",
	Short: "Exercise image resolver CLI",
	Long:  "Eximg resolves stable exercise identifiers to image locations, caching downloads and search results so repeated lookups never touch the network.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print eximg version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "eximg version %s\n", version)
	},
}
