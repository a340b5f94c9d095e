package validation

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoAPIClientTests(t *T) {
	t.Run("returns the canned response per method", func(t *T) {
		client := fixtures.NewAPIClient()

		resp := client.Get("/test")
		assert.Equal(t, "success", resp.Status)
		assert.Empty(t, resp.Data)

		resp = client.Post("/test", map[string]string{"test": "data"})
		assert.Equal(t, "created", resp.Status)
		assert.Equal(t, "new_123", resp.ID)

		assert.Equal(t, "updated", client.Put("/test", nil).Status)
		assert.Equal(t, "deleted", client.Delete("/test").Status)
	})

	t.Run("records every call it receives", func(t *T) {
		client := fixtures.NewAPIClient()
		client.Get("/first")
		client.Delete("/second")

		assert.Len(t, client.Calls, 2)
		client.AssertCalled(t, "Get", "/first")
		client.AssertCalled(t, "Delete", "/second")
		client.AssertNotCalled(t, "Post")
	})
}

func DoAPIServerTests(t *T) {
	t.Run("serves the canned responses over HTTP", func(t *T) {
		server := fixtures.NewAPIServer(t)

		resp, err := http.Get(server.URL + "/things")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var payload fixtures.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "success", payload.Status)
	})

	t.Run("reports created entities on POST", func(t *T) {
		server := fixtures.NewAPIServer(t)

		resp, err := http.Post(server.URL+"/things", "application/json",
			bytes.NewReader([]byte(`{"test": "data"}`)))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var payload fixtures.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "created", payload.Status)
		assert.Equal(t, "new_123", payload.ID)
	})

	t.Run("records incoming requests", func(t *T) {
		server := fixtures.NewAPIServer(t)

		resp, err := http.Get(server.URL + "/recorded")
		require.NoError(t, err)
		resp.Body.Close()

		select {
		case request := <-server.Requests:
			assert.Equal(t, "GET", request.Request.Method)
			assert.Equal(t, "/recorded", request.Request.URL.Path)
		default:
			t.Errorf("server did not record the request")
		}
	})
}
