package fixtures

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, url string, body []byte) (*http.Response, APIResponse) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestAPIServerCannedResponses(t *testing.T) {
	server := NewAPIServer(t)

	resp, payload := doRequest(t, http.MethodGet, server.URL+"/things", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "success", payload.Status)

	resp, payload = doRequest(t, http.MethodPost, server.URL+"/things", []byte(`{"test": "data"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "created", payload.Status)
	assert.Equal(t, "new_123", payload.ID)

	_, payload = doRequest(t, http.MethodPut, server.URL+"/things/1", nil)
	assert.Equal(t, "updated", payload.Status)

	_, payload = doRequest(t, http.MethodDelete, server.URL+"/things/1", nil)
	assert.Equal(t, "deleted", payload.Status)
}

func TestAPIServerRecordsRequests(t *testing.T) {
	server := NewAPIServer(t)

	_, _ = doRequest(t, http.MethodPost, server.URL+"/recorded", []byte(`{"k": "v"}`))

	select {
	case request := <-server.Requests:
		assert.Equal(t, http.MethodPost, request.Request.Method)
		assert.Equal(t, "/recorded", request.Request.URL.Path)
		assert.JSONEq(t, `{"k": "v"}`, string(request.Body))
	default:
		t.Error("expected the request to be recorded")
	}
}
