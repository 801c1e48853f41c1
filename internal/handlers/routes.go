package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the JSON API operations.
func RegisterRoutes(api huma.API, h *APIHandler, health *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          "/shorten",
		Summary:       "Create short URL",
		Description:   "Shortens a URL, optionally under a caller-chosen slug.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusCreated,
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID:   "create-note",
		Method:        http.MethodPost,
		Path:          "/note",
		Summary:       "Create note",
		Description:   "Stores a text note under a short 4-character slug.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateNote)

	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Short URL statistics",
		Description: "Returns click count and access times for a short URL.",
		Tags:        []string{"Entries"},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Ops"},
	}, health.Check)
}
