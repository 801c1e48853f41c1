package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slinkhq/slink/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureMeta(t *testing.T, req *http.Request) middleware.Meta {
	t.Helper()

	var meta middleware.Meta

	handler := middleware.RequestMeta(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		meta = middleware.MetaFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	return meta
}

func TestRequestMeta(t *testing.T) {
	t.Run("assigns a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/abc123", nil)

		meta := captureMeta(t, req)

		require.NotEmpty(t, meta.RequestID)
	})

	t.Run("prefers the first X-Forwarded-For hop", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

		meta := captureMeta(t, req)

		assert.Equal(t, "203.0.113.9", meta.ClientIP)
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.10")

		meta := captureMeta(t, req)

		assert.Equal(t, "203.0.113.10", meta.ClientIP)
	})

	t.Run("falls back to the remote address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:51234"

		meta := captureMeta(t, req)

		assert.Equal(t, "192.0.2.1", meta.ClientIP)
	})

	t.Run("captures user agent and referrer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		req.Header.Set("Referer", "https://referrer.example.com")

		meta := captureMeta(t, req)

		assert.Equal(t, "TestAgent/1.0", meta.UserAgent)
		assert.Equal(t, "https://referrer.example.com", meta.Referrer)
	})

	t.Run("zero meta when middleware absent", func(t *testing.T) {
		meta := middleware.MetaFromContext(t.Context())

		assert.Empty(t, meta.RequestID)
	})
}
