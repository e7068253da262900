package webtest

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Server starts the handler on an ephemeral port and shuts it down when the
// test finishes. Use it when the code under test needs a real socket, for
// example a browser session or the api client.
func Server(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)

	t.Cleanup(server.Close)

	return server
}
