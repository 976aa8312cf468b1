package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/ecotrip/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 50, cfg.Landmarks.MaxTokens)
	assert.Equal(t, 60, cfg.Captions.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Captions.Temperature, 1e-9)
	assert.True(t, cfg.Server.ExposeErrorDetails)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
llm:
  default_provider: ollama
  request_timeout: 5s
landmarks:
  provider: gemini
  catalog:
    hawaii:
      - Waikiki Beach
      - Haleakala
      - Pearl Harbor
captions:
  temperature: 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.LLM.DefaultProvider)
	assert.Equal(t, 5*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "gemini", cfg.Landmarks.Provider)
	assert.Equal(t, []string{"Waikiki Beach", "Haleakala", "Pearl Harbor"}, cfg.Landmarks.Catalog["hawaii"])
	assert.InDelta(t, 0.2, cfg.Captions.Temperature, 1e-9)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := config.Load()
	assert.Error(t, err)
}
