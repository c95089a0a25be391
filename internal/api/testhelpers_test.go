package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newStub starts an httptest server and a resty client pointed at it.
func newStub(t *testing.T, h http.HandlerFunc) (*httptest.Server, *resty.Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, NewRestClient(srv.Client(), srv.URL, zerolog.Nop(), "")
}

// cannedJSON answers every request with status and body.
func cannedJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// bufLogger returns a debug-level logger writing into the returned buffer.
func bufLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf).Level(zerolog.DebugLevel), buf
}

func failingRest() *resty.Client {
	return NewRestClient(&http.Client{Transport: &errRT{}}, "http://example.invalid", zerolog.Nop(), "")
}
