package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run in order; the debug transport and the resty client are set up
// after all options have been applied, so WithHTTPClient and
// WithDebugLogging can be combined in any order.
type Option func(*Client) error

// WithHTTPClient uses a copy of hc for all requests. The copy keeps hc's
// transport, so test stubs and custom dialers work as expected. If hc has no
// Timeout, the timeout configured so far is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		if cp.Timeout == 0 && c.http != nil {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout bounds
// the total time spent on a single HTTP request. The value must be greater
// than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging dumps every request and response through the client
// logger when enabled is true. Do not enable this in production: dumps
// include full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger replaces the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithReadyBackoff tunes the polling interval used by WaitReady.
func WithReadyBackoff(initial, max time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("ready backoff requires 0 < initial <= max")
		}
		c.readyInitial = initial
		c.readyMax = max
		return nil
	}
}
