package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Ping reports whether GET /ping answered 200. Transport failures and any
// other status count as unreachable.
func Ping(ctx context.Context, rc *resty.Client, logger zerolog.Logger) bool {
	resp, err := rc.R().SetContext(ctx).Get("/ping")
	if err != nil {
		requestsTotal.WithLabelValues("ping", outcomeTransport).Inc()
		logger.Debug().Err(err).Msg("ping failed")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		requestsTotal.WithLabelValues("ping", outcomeAPIError).Inc()
		logger.Debug().Int("status", resp.StatusCode()).Msg("ping returned non-200")
		return false
	}
	requestsTotal.WithLabelValues("ping", outcomeOK).Inc()
	return true
}
