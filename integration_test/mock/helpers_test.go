package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/Smarandii/hvmnd-api-client"
)

// newTestClient starts hs and returns a client pointed at it.
func newTestClient(t *testing.T, h http.Handler) *client.Client {
	t.Helper()
	hs := httptest.NewServer(h)
	t.Cleanup(hs.Close)
	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
