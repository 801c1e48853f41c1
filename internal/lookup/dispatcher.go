// Package lookup resolves inbound slugs to their read-side behavior:
// redirect for urls, render for notes, and the fire-and-forget access
// recording that follows a hit.
package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/messaging"
	"go.uber.org/zap"
)

// State is the terminal state of a resolved lookup.
type State int

const (
	StateNotFound State = iota
	StateRedirecting
	StateRendering
)

// Resolution is the outcome of dispatching one slug.
type Resolution struct {
	State State

	// Target is the redirect destination when redirecting.
	Target string

	// Entry is the note to render when rendering.
	Entry *entry.Entry
}

// Fetcher is the read side of the entry repository the dispatcher needs.
type Fetcher interface {
	FetchBySlug(ctx context.Context, slug string) (*entry.Entry, error)
}

// Dispatcher resolves slugs against the repository and schedules access
// recording without blocking the response path.
type Dispatcher struct {
	repo            Fetcher
	publishAccessed messaging.Publish[EntryAccessedEvent]
	logger          *zap.Logger
	now             func() time.Time
}

// NewDispatcher creates a lookup dispatcher.
func NewDispatcher(
	repo Fetcher,
	publishAccessed messaging.Publish[EntryAccessedEvent],
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		repo:            repo,
		publishAccessed: publishAccessed,
		logger:          logger,
		now:             time.Now,
	}
}

// Resolve maps a slug to its terminal state. It never returns an error: any
// failure degrades to not-found so the HTTP layer can fall back to the home
// redirect. On a hit the access event is published fire-and-forget; a failed
// publish is logged and the response proceeds as if it had succeeded.
func (d *Dispatcher) Resolve(ctx context.Context, slug string) Resolution {
	e, err := d.repo.FetchBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, entry.ErrNotFound) {
			d.logger.Warn("lookup failed",
				zap.String("slug", slug),
				zap.Error(err),
			)
		}

		return Resolution{State: StateNotFound}
	}

	d.recordAccess(e)

	if e.Kind == entry.KindNote {
		return Resolution{State: StateRendering, Entry: e}
	}

	return Resolution{
		State:  StateRedirecting,
		Target: entry.EnsureScheme(e.OriginalURL),
	}
}

func (d *Dispatcher) recordAccess(e *entry.Entry) {
	event := &EntryAccessedEvent{
		Slug:       e.Slug,
		Kind:       e.Kind,
		AccessedAt: d.now(),
	}

	if err := d.publishAccessed(event); err != nil {
		d.logger.Warn("failed to publish access event",
			zap.String("slug", e.Slug),
			zap.Error(err),
		)
	}
}
