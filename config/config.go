// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all settings for a channel export run.
type Config struct {
	// APIKey is the YouTube Data API v3 key.
	APIKey string `json:"api_key"`
	// Channel is a channel ID, /channel/ URL or @handle.
	Channel string `json:"channel"`

	// OutputDir is where exports are written. Empty means prompt for it.
	OutputDir string `json:"output_dir"`

	// PageSize is the number of playlist items fetched per page (1-50)
	PageSize int `json:"page_size"`
	// PageDelay is the pause enforced between page fetches
	PageDelay time.Duration `json:"page_delay"`
	// RequestTimeout bounds each API request
	RequestTimeout time.Duration `json:"request_timeout"`

	// SQLitePath enables the SQLite catalog export when non-empty
	SQLitePath string `json:"sqlite_path"`
	// WriteManifest writes manifest.json next to the exports
	WriteManifest bool `json:"write_manifest"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		PageSize:       50,
		PageDelay:      1 * time.Second,
		RequestTimeout: 30 * time.Second,
		WriteManifest:  true,
		LogLevel:       "info",
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Config file is optional
	if err := cfg.loadFromFile(configPaths()); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads configuration from an explicit path, then applies env vars.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.loadFromFile([]string{path}); err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		"ytscrape.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytscrape", "ytscrape.json"),
	}
}

// loadFromFile loads the first config file found among paths.
func (c *Config) loadFromFile(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTSCRAPE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTSCRAPE_CHANNEL"); v != "" {
		c.Channel = v
	}
	if v := os.Getenv("YTSCRAPE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTSCRAPE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("YTSCRAPE_PAGE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.PageDelay = d
		}
	}
	if v := os.Getenv("YTSCRAPE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("YTSCRAPE_SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("YTSCRAPE_WRITE_MANIFEST"); v != "" {
		c.WriteManifest = v == "true" || v == "1"
	}
	if v := os.Getenv("YTSCRAPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that configuration values are valid and consistent.
// It does not require APIKey or Channel; see ValidateForRun.
func (c *Config) Validate() error {
	if c.PageSize < 1 || c.PageSize > 50 {
		return fmt.Errorf("page_size must be between 1 and 50")
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("page_delay must be non-negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ValidateForRun additionally checks the settings a run cannot start without.
func (c *Config) ValidateForRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set YTSCRAPE_API_KEY)")
	}
	if strings.TrimSpace(c.Channel) == "" {
		return fmt.Errorf("channel is required (set YTSCRAPE_CHANNEL or -channel)")
	}
	return nil
}

// ParseLogLevel maps a level name onto a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error")
}
