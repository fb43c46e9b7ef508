package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mathdeck/mathdeck/internal/initialization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer(t *testing.T) {
	serverContainer, err := initialization.NewServerContainer()
	require.NoError(t, err)

	app := NewHTTPServer(context.Background(), HTTPServerDependencies{
		ToolController: serverContainer.GetToolController(),
	})

	t.Run("health endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("tool listing includes every registered tool", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tools/", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var listing struct {
			Tools []struct {
				Name        string          `json:"name"`
				Description string          `json:"description"`
				InputSchema json.RawMessage `json:"inputSchema"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(body, &listing))

		assert.Len(t, listing.Tools, 22)

		names := make(map[string]bool, len(listing.Tools))
		for _, tool := range listing.Tools {
			names[tool.Name] = true
			assert.NotEmpty(t, tool.InputSchema)
		}

		for _, expected := range []string{"add", "divide", "factorial", "logarithm", "sine", "median", "standard_deviation"} {
			assert.True(t, names[expected], "listing should contain %s", expected)
		}
	})

	t.Run("successful tool call", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools/add", strings.NewReader(`{"arguments": {"a": 2, "b": 3}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(body, &envelope))

		assert.Equal(t, "success", envelope["status"])
		assert.Equal(t, "add", envelope["operation"])
		assert.Equal(t, 5.0, envelope["result"])
		assert.NotContains(t, envelope, "message")
	})

	t.Run("domain error still returns 200 with error envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools/divide", strings.NewReader(`{"arguments": {"a": 10, "b": 0}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(body, &envelope))

		assert.Equal(t, "error", envelope["status"])
		assert.Equal(t, "Division by zero is not allowed.", envelope["message"])
		assert.NotContains(t, envelope, "result")
	})

	t.Run("unknown tool returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools/cuberoot", strings.NewReader(`{"arguments": {"a": 8}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("responses carry a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	})
}
