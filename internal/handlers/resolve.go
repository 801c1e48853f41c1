package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/slinkhq/slink/internal/lookup"
	"go.uber.org/zap"
)

// SlugResolver is the dispatcher slice the resolver needs.
type SlugResolver interface {
	Resolve(ctx context.Context, slug string) lookup.Resolution
}

// Resolver serves the browser-facing routes: the landing page and the slug
// path users click. Unlike the JSON API it never returns structured errors;
// anything that goes wrong degrades to a redirect home.
type Resolver struct {
	dispatcher SlugResolver
	logger     *zap.Logger
}

// NewResolver creates the browser-facing resolver.
func NewResolver(dispatcher SlugResolver, logger *zap.Logger) *Resolver {
	return &Resolver{dispatcher: dispatcher, logger: logger}
}

// MountRoutes attaches the resolver routes to the router. The slug route is
// registered last so the JSON API paths keep precedence.
func (rs *Resolver) MountRoutes(router chi.Router) {
	router.Get("/", rs.serveHome)
	router.Get("/{slug}", rs.serveSlug)
}

func (rs *Resolver) serveSlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	// Dotted paths are reserved for static assets and never hit the store.
	if slug == "" || strings.Contains(slug, ".") {
		http.NotFound(w, r)

		return
	}

	res := rs.dispatcher.Resolve(r.Context(), slug)

	switch res.State {
	case lookup.StateRedirecting:
		http.Redirect(w, r, res.Target, http.StatusFound)
	case lookup.StateRendering:
		rs.renderNote(w, r, res)
	default:
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (rs *Resolver) renderNote(w http.ResponseWriter, r *http.Request, res lookup.Resolution) {
	page, err := renderNotePage(res.Entry)
	if err != nil {
		rs.logger.Error("note render failed",
			zap.String("slug", res.Entry.Slug),
			zap.Error(err),
		)
		http.Redirect(w, r, "/", http.StatusFound)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (rs *Resolver) serveHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(homePage))
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>slink</title>
</head>
<body>
  <main style="max-width:640px;margin:48px auto;font-family:sans-serif">
    <h1>slink</h1>
    <p>Shorten a URL: <code>POST /shorten</code> with <code>{"url": "..."}</code>.</p>
    <p>Share a note: <code>POST /note</code> with <code>{"content": "..."}</code>.</p>
    <p>Check stats: <code>GET /stats?slug=...</code>.</p>
  </main>
</body>
</html>
`
