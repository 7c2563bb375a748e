package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"YTSCRAPE_API_KEY", "YTSCRAPE_CHANNEL", "YTSCRAPE_OUTPUT_DIR",
		"YTSCRAPE_PAGE_SIZE", "YTSCRAPE_PAGE_DELAY", "YTSCRAPE_REQUEST_TIMEOUT",
		"YTSCRAPE_SQLITE_PATH",
		"YTSCRAPE_WRITE_MANIFEST", "YTSCRAPE_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, time.Second, cfg.PageDelay)
	assert.True(t, cfg.WriteManifest)
	assert.Error(t, cfg.ValidateForRun(), "defaults carry no api key or channel")
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	t.Setenv("YTSCRAPE_API_KEY", "key-123")
	t.Setenv("YTSCRAPE_CHANNEL", "@somechannel")
	t.Setenv("YTSCRAPE_OUTPUT_DIR", "out")
	t.Setenv("YTSCRAPE_PAGE_SIZE", "25")
	t.Setenv("YTSCRAPE_PAGE_DELAY", "250ms")
	t.Setenv("YTSCRAPE_REQUEST_TIMEOUT", "5s")
	t.Setenv("YTSCRAPE_SQLITE_PATH", "catalog.db")
	t.Setenv("YTSCRAPE_WRITE_MANIFEST", "false")
	t.Setenv("YTSCRAPE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateForRun())

	assert.Equal(t, &Config{
		APIKey:         "key-123",
		Channel:        "@somechannel",
		OutputDir:      "out",
		PageSize:       25,
		PageDelay:      250 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
		SQLitePath:     "catalog.db",
		WriteManifest:  false,
		LogLevel:       "debug",
	}, cfg)
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ytscrape.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_key": "file-key",
		"channel": "UCuAXFkgsw1L7xaCfnd5JJOw",
		"page_size": 10,
		"page_delay": 2000000000
	}`), 0644))

	t.Setenv("YTSCRAPE_API_KEY", "env-key")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", cfg.Channel)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 2*time.Second, cfg.PageDelay)
	assert.True(t, cfg.WriteManifest)
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"page_size": 500}`), 0644))
	_, err = LoadFile(invalid)
	assert.ErrorContains(t, err, "page_size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"page size too large", func(c *Config) { c.PageSize = 51 }, true},
		{"negative delay", func(c *Config) { c.PageDelay = -time.Second }, true},
		{"zero delay", func(c *Config) { c.PageDelay = 0 }, false},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
