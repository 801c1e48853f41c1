// Package handlers exposes the HTTP surface: the JSON API for creating
// entries and querying stats, and the browser-facing slug resolver.
package handlers

import (
	"context"
	"fmt"

	"github.com/slinkhq/slink/internal/entry"
	"go.uber.org/zap"
)

// EntryService is the slice of the repository the API handlers need.
type EntryService interface {
	CreateURL(ctx context.Context, originalURL, customSlug string) (*entry.Entry, error)
	CreateNote(ctx context.Context, title, content string) (*entry.Entry, error)
	FetchURL(ctx context.Context, slug string) (*entry.Entry, error)
}

// APIHandler handles the JSON endpoints.
type APIHandler struct {
	repo    EntryService
	baseURL string
	logger  *zap.Logger
}

// NewAPIHandler creates the JSON API handler.
func NewAPIHandler(repo EntryService, baseURL string, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		repo:    repo,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Shorten creates a shortened URL.
func (h *APIHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	e, err := h.repo.CreateURL(ctx, req.Body.URL, req.Body.CustomSlug)
	if err != nil {
		h.logCreateFailure("url", err)

		return nil, mapEntryError(err)
	}

	resp := &ShortenResponse{}
	resp.Body.Success = true
	resp.Body.Slug = e.Slug
	resp.Body.OriginalURL = e.OriginalURL
	resp.Body.CreatedAt = e.CreatedAt
	resp.Body.ShortURL = fmt.Sprintf("%s/%s", h.baseURL, e.Slug)

	return resp, nil
}

// CreateNote creates a note.
func (h *APIHandler) CreateNote(ctx context.Context, req *NoteRequest) (*NoteResponse, error) {
	e, err := h.repo.CreateNote(ctx, req.Body.Title, req.Body.Content)
	if err != nil {
		h.logCreateFailure("note", err)

		return nil, mapEntryError(err)
	}

	resp := &NoteResponse{}
	resp.Body.Success = true
	resp.Body.Slug = e.Slug
	resp.Body.Title = e.Title
	resp.Body.CreatedAt = e.CreatedAt
	resp.Body.NoteURL = fmt.Sprintf("%s/%s", h.baseURL, e.Slug)

	return resp, nil
}

// Stats returns the usage statistics of one short URL. Only the url
// namespace is queried; note view counts are not exposed here.
func (h *APIHandler) Stats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	if req.Slug == "" {
		return nil, mapEntryError(fmt.Errorf("%w: slug parameter is required", entry.ErrInvalidInput))
	}

	e, err := h.repo.FetchURL(ctx, req.Slug)
	if err != nil {
		return nil, mapEntryError(err)
	}

	resp := &StatsResponse{}
	resp.Body.Success = true
	resp.Body.Slug = e.Slug
	resp.Body.OriginalURL = e.OriginalURL
	resp.Body.CreatedAt = e.CreatedAt
	resp.Body.ClickCount = e.AccessCount
	resp.Body.LastAccessed = e.LastAccessed

	return resp, nil
}

func (h *APIHandler) logCreateFailure(kind string, err error) {
	h.logger.Warn("create failed",
		zap.String("kind", kind),
		zap.Error(err),
	)
}
