package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFileOrEnv(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err, "a missing config file must not be an error")

	assert.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, DefaultGroqBaseURL, cfg.GroqBaseURL)
	assert.Equal(t, DefaultGroqModelID, cfg.GroqModelID)
	assert.Equal(t, DefaultCatalogDir, cfg.CatalogDir)
	// A missing credential degrades requests, it never fails startup.
	assert.Empty(t, cfg.GroqAPIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("GROQ_API_KEY", "gsk_test_123")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("GROQ_MODEL_ID", "llama-3.3-70b-versatile")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gsk_test_123", cfg.GroqAPIKey)
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModelID)
	assert.Equal(t, DefaultGroqBaseURL, cfg.GroqBaseURL)
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	yaml := "SERVER_ADDRESS: \":7070\"\nCATALOG_DIR: \"fixtures\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "fixtures", cfg.CatalogDir)
}
