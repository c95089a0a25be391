package client

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the settings a Client can be built from. LoadConfig fills it
// from environment variables with the prefix "HVMND_", e.g.
// HVMND_API_BASE_URL=http://localhost:8080 HVMND_HTTP_TIMEOUT=10s.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	Debug       bool
	UserAgent   string
}

// Defaults used when a variable is unset or set to the empty string.
const (
	defaultHTTPTimeout = 30 * time.Second
	legacyBaseURLEnv   = "API_BASE_URL"
)

// envConfig is the raw environment view. Values are read as text so that a
// variable set to "" means the default rather than a parse error.
type envConfig struct {
	BaseURL     string `envconfig:"API_BASE_URL"`
	HTTPTimeout string `envconfig:"HTTP_TIMEOUT"`
	Debug       string `envconfig:"DEBUG"`
	UserAgent   string `envconfig:"USER_AGENT"`
}

// LoadConfig populates Config from environment variables (prefix HVMND_).
// HVMND_API_BASE_URL falls back to API_BASE_URL and one of them must be set.
func LoadConfig() (Config, error) {
	cfg := Config{HTTPTimeout: defaultHTTPTimeout, UserAgent: defaultUserAgent}

	var env envConfig
	if err := envconfig.Process("HVMND", &env); err != nil {
		return cfg, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if env.HTTPTimeout != "" {
		d, err := time.ParseDuration(env.HTTPTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid HVMND_HTTP_TIMEOUT %q: %w", env.HTTPTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	if env.Debug != "" {
		b, err := strconv.ParseBool(env.Debug)
		if err != nil {
			return cfg, fmt.Errorf("invalid HVMND_DEBUG %q: %w", env.Debug, err)
		}
		cfg.Debug = b
	}
	if env.UserAgent != "" {
		cfg.UserAgent = env.UserAgent
	}

	cfg.BaseURL = env.BaseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv(legacyBaseURLEnv)
	}
	if cfg.BaseURL == "" {
		return cfg, fmt.Errorf("HVMND_API_BASE_URL (or %s) must be set", legacyBaseURLEnv)
	}
	return cfg, nil
}

// NewFromConfig builds a Client from cfg. Extra options are applied after
// the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
		WithUserAgent(cfg.UserAgent),
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
