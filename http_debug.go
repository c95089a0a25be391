package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs a full dump of every request and response at debug
// level. It is installed by WithDebugLogging or when HVMND_DEBUG=true or
// DEBUG=true is set in the environment.
//
// Dumps include bodies: only enable it in development.
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HVMND_DEBUG=true or DEBUG=true is
// set.
func debugLoggingRequested() bool {
	return os.Getenv("HVMND_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
