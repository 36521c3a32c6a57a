package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeade/eximg/internal/config"
	"github.com/dmeade/eximg/internal/logging"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the resolution cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached entries and downloaded images",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		svc, err := buildService(cfg, logging.New(cfg.LogLevel))
		if err != nil {
			return err
		}
		svc.Clear()
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		svc, err := buildService(cfg, logging.New(cfg.LogLevel))
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(svc.Stats(cfg.TTL()), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var cacheSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove cache entries older than the TTL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		svc, err := buildService(cfg, logging.New(cfg.LogLevel))
		if err != nil {
			return err
		}
		removed := svc.Sweep(cfg.TTL())
		fmt.Fprintf(os.Stdout, "Removed %d expired entries.\n", removed)
		return nil
	},
}

func init() {
	addResolverFlags(cacheClearCmd)
	addResolverFlags(cacheShowCmd)
	addResolverFlags(cacheSweepCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheSweepCmd)
}
