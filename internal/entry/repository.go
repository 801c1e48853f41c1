package entry

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/slinkhq/slink/internal/kv"
	"github.com/slinkhq/slink/internal/slug"
	"github.com/slinkhq/slink/internal/timeindex"
	"go.uber.org/zap"
)

// maxSlugAttempts bounds the random-slug collision retry loop.
const maxSlugAttempts = 10

var customSlugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Evictor frees store capacity. It reports whether anything was evicted,
// which is the signal that a rejected write may be retried once.
type Evictor interface {
	EvictOldest(ctx context.Context) bool
}

// Repository owns the create/read/update lifecycle of entries and enforces
// slug uniqueness per namespace.
type Repository struct {
	store    kv.Store
	index    *timeindex.Index
	evictor  Evictor
	urlSlug  slug.Generator
	noteSlug slug.Generator
	logger   *zap.Logger
	now      func() time.Time
}

// NewRepository creates an entry repository.
func NewRepository(
	store kv.Store,
	index *timeindex.Index,
	evictor Evictor,
	urlSlug, noteSlug slug.Generator,
	logger *zap.Logger,
) *Repository {
	return &Repository{
		store:    store,
		index:    index,
		evictor:  evictor,
		urlSlug:  urlSlug,
		noteSlug: noteSlug,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateURL validates and persists a new shortened URL. A custom slug must
// match [A-Za-z0-9_-]+ and be free in the url namespace; otherwise a random
// 6-character slug is generated with bounded collision retries.
func (r *Repository) CreateURL(ctx context.Context, originalURL, customSlug string) (*Entry, error) {
	normalized, err := NormalizeURL(originalURL)
	if err != nil {
		return nil, err
	}

	var s string

	if customSlug != "" {
		if !customSlugPattern.MatchString(customSlug) {
			return nil, fmt.Errorf("%w: custom slug may only contain letters, digits, underscores and hyphens", ErrInvalidInput)
		}

		taken, err := r.exists(ctx, KindURL, customSlug)
		if err != nil {
			return nil, err
		}

		if taken {
			return nil, ErrSlugConflict
		}

		s = customSlug
	} else {
		s, err = r.uniqueSlug(ctx, KindURL, r.urlSlug)
		if err != nil {
			return nil, err
		}
	}

	e := &Entry{
		Kind:        KindURL,
		Slug:        s,
		OriginalURL: normalized,
		CreatedAt:   r.now(),
	}

	if err := r.persist(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// CreateNote validates and persists a new note. Notes always get a random
// 4-character slug; there is no custom-slug path.
func (r *Repository) CreateNote(ctx context.Context, title, content string) (*Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: note content is required", ErrInvalidInput)
	}

	s, err := r.uniqueSlug(ctx, KindNote, r.noteSlug)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Kind:      KindNote,
		Slug:      s,
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: r.now(),
	}

	if err := r.persist(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// FetchBySlug resolves a slug against the note namespace first, then the url
// namespace. Slugs containing a dot are reserved for static assets and are
// rejected up front without touching the store.
func (r *Repository) FetchBySlug(ctx context.Context, s string) (*Entry, error) {
	if s == "" || strings.Contains(s, ".") {
		return nil, ErrNotFound
	}

	data, err := r.store.Get(ctx, KindNote.Key(s))
	if err == nil {
		return Unmarshal(KindNote, data)
	}

	if !errors.Is(err, kv.ErrNotFound) {
		return nil, fmt.Errorf("fetching note entry: %w", err)
	}

	data, err = r.store.Get(ctx, KindURL.Key(s))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("fetching url entry: %w", err)
	}

	return Unmarshal(KindURL, data)
}

// FetchURL reads an entry from the url namespace only. The stats surface is
// url-only; note view counts are not exposed.
func (r *Repository) FetchURL(ctx context.Context, s string) (*Entry, error) {
	data, err := r.store.Get(ctx, KindURL.Key(s))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("fetching url entry: %w", err)
	}

	return Unmarshal(KindURL, data)
}

// RecordAccess increments the entry's access counter and stamps the access
// time by rewriting the full entry. It is fire-and-forget: the read-path
// response has already been sent by the time this runs, so every failure here
// is logged and absorbed.
func (r *Repository) RecordAccess(ctx context.Context, s string, kind Kind) {
	key := kind.Key(s)

	data, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("access update: entry read failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return
	}

	e, err := Unmarshal(kind, data)
	if err != nil {
		r.logger.Warn("access update: entry decode failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return
	}

	e.AccessCount++
	accessed := r.now()
	e.LastAccessed = &accessed

	updated, err := Marshal(e)
	if err != nil {
		r.logger.Warn("access update: entry encode failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return
	}

	if err := r.store.Put(ctx, key, updated); err != nil {
		r.logger.Warn("access update: entry write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// uniqueSlug draws random candidates until one is free in the kind's
// namespace, giving up after maxSlugAttempts collisions.
func (r *Repository) uniqueSlug(ctx context.Context, kind Kind, gen slug.Generator) (string, error) {
	for range maxSlugAttempts {
		candidate := gen()

		taken, err := r.exists(ctx, kind, candidate)
		if err != nil {
			return "", err
		}

		if !taken {
			return candidate, nil
		}
	}

	return "", ErrGenerationExhausted
}

func (r *Repository) exists(ctx context.Context, kind Kind, s string) (bool, error) {
	_, err := r.store.Get(ctx, kind.Key(s))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("checking slug %q: %w", s, err)
	}

	return true, nil
}

// persist writes the entry, running one evict-and-retry cycle when the store
// reports capacity exhaustion, then appends to the time index best-effort.
func (r *Repository) persist(ctx context.Context, e *Entry) error {
	data, err := Marshal(e)
	if err != nil {
		return err
	}

	key := e.Key()

	err = r.store.Put(ctx, key, data)
	if errors.Is(err, kv.ErrCapacityExceeded) {
		if !r.evictor.EvictOldest(ctx) {
			return ErrStorageExhausted
		}

		err = r.store.Put(ctx, key, data)
		if errors.Is(err, kv.ErrCapacityExceeded) {
			return ErrStorageExhausted
		}
	}

	if err != nil {
		return fmt.Errorf("persisting entry: %w", err)
	}

	r.index.Append(ctx, timeindex.Record{
		Slug:      e.Slug,
		CreatedAt: e.CreatedAt,
		Kind:      string(e.Kind),
	})

	return nil
}
