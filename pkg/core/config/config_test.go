package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "us-central1", cfg.Region)
	assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
	assert.Equal(t, 3, cfg.Attempts)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEDGERWISE_MODEL", "gemini-2.5-pro")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "europe-west4")
	t.Setenv("LEDGERWISE_MAX_TOKENS", "4096")
	t.Setenv("LEDGERWISE_ATTEMPTS", "5")
	t.Setenv("LEDGERWISE_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "europe-west4", cfg.Region)
	assert.Equal(t, int32(4096), cfg.MaxOutputTokens)
	assert.Equal(t, 5, cfg.Attempts)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("LEDGERWISE_TIMEOUT_SECONDS", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	t.Setenv("LEDGERWISE_ATTEMPTS", "0")
	_, err := Load()
	assert.Error(t, err)
}
