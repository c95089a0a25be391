package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://api.local:8080")
	t.Setenv("HVMND_HTTP_TIMEOUT", "")
	t.Setenv("HVMND_DEBUG", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "hvmnd-api-client", cfg.UserAgent)
}

func TestLoadConfig_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://api.local:8080")
	t.Setenv("HVMND_HTTP_TIMEOUT", "")
	t.Setenv("HVMND_DEBUG", "")
	t.Setenv("HVMND_USER_AGENT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "hvmnd-api-client", cfg.UserAgent)
}

func TestLoadConfig_ExplicitValues(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://api.local:8080")
	t.Setenv("HVMND_HTTP_TIMEOUT", "12s")
	t.Setenv("HVMND_DEBUG", "true")
	t.Setenv("HVMND_USER_AGENT", "bot/2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "bot/2", cfg.UserAgent)
}

func TestLoadConfig_BadDebug(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://api.local")
	t.Setenv("HVMND_DEBUG", "sometimes")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_LegacyBaseURL(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "")
	t.Setenv("API_BASE_URL", "http://legacy:8000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://legacy:8000", cfg.BaseURL)
}

func TestLoadConfig_PrefixedWinsOverLegacy(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://new:8000")
	t.Setenv("API_BASE_URL", "http://legacy:8000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://new:8000", cfg.BaseURL)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "")
	t.Setenv("API_BASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	t.Setenv("HVMND_API_BASE_URL", "http://api.local")
	t.Setenv("HVMND_HTTP_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Setenv("HVMND_DEBUG", "")
	t.Setenv("DEBUG", "")
	cfg := Config{BaseURL: "http://api.local", HTTPTimeout: 3 * time.Second, UserAgent: "cli"}

	c, err := NewFromConfig(cfg, WithHTTPTimeout(7*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", c.BaseURL())
	assert.Equal(t, 7*time.Second, c.http.Timeout, "explicit options apply after config")
	assert.Equal(t, "cli", c.userAgent)
	_, debug := c.http.Transport.(*debugTransport)
	assert.False(t, debug)
}
