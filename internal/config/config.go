package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Config represents the eximg configuration.
type Config struct {
	Strategy       string      `json:"strategy"`
	StaticBaseURL  string      `json:"staticBaseUrl"`
	CatalogBaseURL string      `json:"catalogBaseUrl"`
	CacheDir       string      `json:"cacheDir,omitempty"`
	TTLSeconds     int         `json:"ttlSeconds"`
	WindowSize     int         `json:"windowSize"`
	TimeoutSeconds int         `json:"timeoutSeconds"`
	LogLevel       string      `json:"logLevel"`
	Serve          ServeConfig `json:"serve"`
}

// ServeConfig controls the optional HTTP surface.
type ServeConfig struct {
	Addr string `json:"addr"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Strategy:       "static",
		StaticBaseURL:  "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises",
		CatalogBaseURL: "https://wger.de/api/v2",
		TTLSeconds:     7 * 24 * 60 * 60,
		WindowSize:     3,
		TimeoutSeconds: 5,
		LogLevel:       "warn",
		Serve: ServeConfig{
			Addr: "127.0.0.1:8745",
		},
	}
}

// TTL returns the search-cache TTL as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Timeout returns the per-call remote deadline as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConfigDir returns the platform-appropriate config directory for eximg.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eximg"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "eximg"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "eximg"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "eximg"), nil
	default:
		return filepath.Join(home, ".config", "eximg"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Strategy != "" {
		dst.Strategy = src.Strategy
	}
	if src.StaticBaseURL != "" {
		dst.StaticBaseURL = src.StaticBaseURL
	}
	if src.CatalogBaseURL != "" {
		dst.CatalogBaseURL = src.CatalogBaseURL
	}
	if src.CacheDir != "" {
		dst.CacheDir = src.CacheDir
	}
	if src.TTLSeconds > 0 {
		dst.TTLSeconds = src.TTLSeconds
	}
	if src.WindowSize > 0 {
		dst.WindowSize = src.WindowSize
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Serve.Addr != "" {
		dst.Serve.Addr = src.Serve.Addr
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("EXIMG_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv("EXIMG_STATIC_BASE_URL"); v != "" {
		cfg.StaticBaseURL = v
	}
	if v := os.Getenv("EXIMG_CATALOG_BASE_URL"); v != "" {
		cfg.CatalogBaseURL = v
	}
	if v := os.Getenv("EXIMG_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("EXIMG_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TTLSeconds = n
		}
	}
	if v := os.Getenv("EXIMG_WINDOW_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WindowSize = n
		}
	}
	if v := os.Getenv("EXIMG_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("EXIMG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EXIMG_SERVE_ADDR"); v != "" {
		cfg.Serve.Addr = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["strategy"]; ok && v != "" {
		cfg.Strategy = v
	}
	if v, ok := overrides["cacheDir"]; ok && v != "" {
		cfg.CacheDir = v
	}
	if v, ok := overrides["windowSize"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WindowSize = n
		}
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["ttlSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TTLSeconds = n
		}
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides["serveAddr"]; ok && v != "" {
		cfg.Serve.Addr = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "strategy":
		if value != "static" && value != "search" {
			return fmt.Errorf("strategy must be static or search, got %q", value)
		}
		cfg.Strategy = value
	case "staticBaseUrl":
		cfg.StaticBaseURL = value
	case "catalogBaseUrl":
		cfg.CatalogBaseURL = value
	case "cacheDir":
		cfg.CacheDir = value
	case "ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("ttlSeconds must be an integer: %w", err)
		}
		cfg.TTLSeconds = n
	case "windowSize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("windowSize must be an integer: %w", err)
		}
		cfg.WindowSize = n
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "logLevel":
		cfg.LogLevel = value
	case "serveAddr":
		cfg.Serve.Addr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
