package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/handlers"
	"github.com/slinkhq/slink/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDispatcher struct {
	resolution lookup.Resolution
	calls      int
}

func (m *mockDispatcher) Resolve(_ context.Context, _ string) lookup.Resolution {
	m.calls++

	return m.resolution
}

func newTestRouter(d handlers.SlugResolver) *chi.Mux {
	router := chi.NewMux()
	resolver := handlers.NewResolver(d, zap.NewNop())
	resolver.MountRoutes(router)

	return router
}

func TestResolver_ServeSlug(t *testing.T) {
	t.Run("redirects url hits with 302", func(t *testing.T) {
		d := &mockDispatcher{resolution: lookup.Resolution{
			State:  lookup.StateRedirecting,
			Target: "https://example.com/page",
		}}
		router := newTestRouter(d)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/abc123", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://example.com/page", rec.Header().Get("Location"))
	})

	t.Run("renders note hits as html", func(t *testing.T) {
		d := &mockDispatcher{resolution: lookup.Resolution{
			State: lookup.StateRendering,
			Entry: &entry.Entry{
				Kind:        entry.KindNote,
				Slug:        "ab12",
				Title:       "groceries",
				Content:     "milk & <eggs>",
				AccessCount: 3,
			},
		}}
		router := newTestRouter(d)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ab12", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, "groceries")
		// User content is escaped, never raw.
		assert.Contains(t, body, "milk &amp; &lt;eggs&gt;")
		assert.NotContains(t, body, "<eggs>")
	})

	t.Run("unknown slug redirects home instead of erroring", func(t *testing.T) {
		d := &mockDispatcher{resolution: lookup.Resolution{State: lookup.StateNotFound}}
		router := newTestRouter(d)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zzzz", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("dotted slugs get 404 without resolving", func(t *testing.T) {
		d := &mockDispatcher{}
		router := newTestRouter(d)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report.pdf", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 0, d.calls)
	})
}

func TestResolver_ServeHome(t *testing.T) {
	router := newTestRouter(&mockDispatcher{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
