package fixtures

import (
	"net/http"
	"net/http/httptest"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

// APIServer is a real HTTP server that serves the same canned responses as
// MockAPIClient, for code paths that need to exercise the network stack rather
// than an injected client. Every request it receives is available on Requests.
type APIServer struct {
	URL      string
	Requests <-chan httphelpers.HTTPRequestInfo
	server   *httptest.Server
}

// NewAPIServer starts the canned-response server and shuts it down when the
// test completes.
func NewAPIServer(t TestingT) *APIServer {
	handler := httphelpers.HandlerForMethod(http.MethodPost,
		jsonHandler(http.StatusCreated, `{"status": "created", "id": "new_123"}`),
		httphelpers.HandlerForMethod(http.MethodPut,
			jsonHandler(http.StatusOK, `{"status": "updated"}`),
			httphelpers.HandlerForMethod(http.MethodDelete,
				jsonHandler(http.StatusOK, `{"status": "deleted"}`),
				jsonHandler(http.StatusOK, `{"status": "success", "data": []}`))))
	recorder, requests := httphelpers.RecordingHandler(handler)

	server := httptest.NewServer(recorder)
	t.Cleanup(server.Close)

	return &APIServer{
		URL:      server.URL,
		Requests: requests,
		server:   server,
	}
}

func jsonHandler(status int, body string) http.Handler {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return httphelpers.HandlerWithResponse(status, headers, []byte(body))
}
