package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "claude-sonnet-4-20250514", cfg.LLM.Model)
	require.Equal(t, 4096, cfg.LLM.MaxTokens)
	require.Equal(t, 75*time.Millisecond, cfg.Scryfall.MinInterval)
	require.Equal(t, "MTG_Salty/1.0", cfg.Scryfall.UserAgent)
	require.Equal(t, "https://api.moxfield.com/v2", cfg.Moxfield.BaseURL)
	require.False(t, cfg.Cache.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")
	t.Setenv("LLM_MODEL", "some-other-model")
	t.Setenv("SCRYFALL_MIN_INTERVAL", "120ms")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9999", cfg.HTTP.Address)
	require.Equal(t, "sk-env", cfg.LLM.APIKey)
	require.Equal(t, "some-other-model", cfg.LLM.Model)
	require.Equal(t, 120*time.Millisecond, cfg.Scryfall.MinInterval)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, "localhost:6379", cfg.Cache.Addr)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":7070"
llm:
  model: file-model
  maxTokens: 2048
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, "file-model", cfg.LLM.Model)
	require.Equal(t, 2048, cfg.LLM.MaxTokens)
	// Untouched sections keep their defaults.
	require.Equal(t, "https://api.scryfall.com", cfg.Scryfall.BaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.HTTP.Address = "" }},
		{"empty model", func(c *Config) { c.LLM.Model = "" }},
		{"zero max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }},
		{"zero min interval", func(c *Config) { c.Scryfall.MinInterval = 0 }},
		{"cache enabled without addr", func(c *Config) { c.Cache.Enabled = true }},
		{"rate limit without rpm", func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, defaultConfig().Validate())
}
