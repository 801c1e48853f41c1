package lookup

import (
	"context"
	"time"

	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/messaging"
)

// TopicEntryAccessed carries one event per successful lookup.
const TopicEntryAccessed = "entry.accessed"

// EntryAccessedEvent is emitted when a slug resolves to a live entry.
type EntryAccessedEvent struct {
	Slug       string     `json:"slug"`
	Kind       entry.Kind `json:"kind"`
	AccessedAt time.Time  `json:"accessedAt"`
}

// AccessRecorder is the write side the access consumer needs.
type AccessRecorder interface {
	RecordAccess(ctx context.Context, slug string, kind entry.Kind)
}

// NewAccessHandler returns the consumer handler that applies an access event
// to the store. RecordAccess absorbs its own failures, so the handler always
// acks; a counter update is a refinement of the lookup, not a correctness
// requirement, and must not be redelivered into a retry loop.
func NewAccessHandler(repo AccessRecorder) messaging.Handler[EntryAccessedEvent] {
	return func(ctx context.Context, event *EntryAccessedEvent) error {
		repo.RecordAccess(ctx, event.Slug, event.Kind)

		return nil
	}
}
