package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"resty.dev/v3"

	"github.com/dmeade/eximg/internal/catalog"
	"github.com/dmeade/eximg/internal/config"
	"github.com/dmeade/eximg/internal/resolver"
	"github.com/dmeade/eximg/internal/store"
)

// Shared resolver flags
var (
	flagStrategy string
	flagCacheDir string
	flagWindow   int
	flagTimeout  int
	flagFormat   string
	flagOut      string
)

func addResolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", "Resolver strategy (static, search)")
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", "", "Cache directory (default: platform cache dir)")
	cmd.Flags().IntVar(&flagWindow, "window", 0, "Concurrent resolutions per batch window")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Per-call remote deadline in seconds")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagStrategy != "" {
		m["strategy"] = flagStrategy
	}
	if flagCacheDir != "" {
		m["cacheDir"] = flagCacheDir
	}
	if flagWindow > 0 {
		m["windowSize"] = fmt.Sprintf("%d", flagWindow)
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	return m
}

// cacheDir resolves the effective cache directory for cfg.
func cacheDir(cfg config.Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	return store.DefaultDir()
}

// buildService wires a resolver service from configuration. Each strategy
// keeps its own persisted blob, so switching strategies never mixes
// TTL-governed entries with permanent ones.
func buildService(cfg config.Config, log *logrus.Logger) (*resolver.Service, error) {
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	imageDir := filepath.Join(dir, "images")

	switch cfg.Strategy {
	case "static", "":
		st := store.New(filepath.Join(dir, "static_images.json"), log)
		client := resty.New().SetTimeout(cfg.Timeout())
		res := resolver.NewStatic(st, client, cfg.StaticBaseURL, imageDir, log)
		return resolver.NewService(res, st, imageDir, cfg.WindowSize, log), nil
	case "search":
		st := store.New(filepath.Join(dir, "search_images.json"), log)
		cat := catalog.NewClient(cfg.CatalogBaseURL, cfg.Timeout())
		res := resolver.NewSearch(st, cat, cfg.TTL(), log)
		return resolver.NewService(res, st, "", cfg.WindowSize, log), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", cfg.Strategy)
	}
}
