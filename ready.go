package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

var errNotReady = errors.New("api did not answer ping")

// WaitReady polls Ping with exponential backoff until the API answers or
// ctx ends. It is meant for start-up ordering (scripts, test suites); API
// operations themselves are never retried.
func (c *Client) WaitReady(ctx context.Context) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.readyInitial
	exp.MaxInterval = c.readyMax
	exp.MaxElapsedTime = 0 // bounded by ctx
	exp.Reset()

	ping := func() error {
		if c.Ping(ctx) {
			readyChecksTotal.WithLabelValues("up").Inc()
			return nil
		}
		readyChecksTotal.WithLabelValues("down").Inc()
		return errNotReady
	}
	notify := func(err error, wait time.Duration) {
		c.log.Debug().Err(err).Str("base_url", c.baseURL).Dur("next_attempt_in", wait).Msg("api not ready")
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(exp, ctx), notify); err != nil {
		return fmt.Errorf("wait for %s: %w", c.baseURL, err)
	}
	return nil
}
