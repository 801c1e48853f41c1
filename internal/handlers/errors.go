package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/slinkhq/slink/internal/entry"
)

// apiError is the JSON error envelope for the create and stats endpoints:
// a status code plus a single "error" field.
type apiError struct {
	status  int
	Message string `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Message }

// UseErrorModel replaces huma's default problem-details errors with the
// service's {"error": "..."} envelope. Call once before registering routes.
func UseErrorModel() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &apiError{status: status, Message: message}
	}
}

// mapEntryError translates the repository's error taxonomy to HTTP statuses.
func mapEntryError(err error) error {
	switch {
	case errors.Is(err, entry.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, entry.ErrSlugConflict):
		return huma.Error409Conflict("this custom slug is already in use")
	case errors.Is(err, entry.ErrGenerationExhausted):
		return huma.Error500InternalServerError("failed to generate a short slug, please retry")
	case errors.Is(err, entry.ErrStorageExhausted):
		return huma.NewError(http.StatusInsufficientStorage, "storage is full and could not be freed")
	case errors.Is(err, entry.ErrNotFound):
		return huma.Error404NotFound("slug not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
