// Package eviction frees store capacity by deleting the oldest entries when
// a write is rejected for lack of space.
package eviction

import (
	"context"

	"github.com/slinkhq/slink/internal/kv"
	"github.com/slinkhq/slink/internal/timeindex"
	"go.uber.org/zap"
)

const (
	// evictFraction of the ledger is deleted per run.
	evictFraction = 0.10
	minEvictions  = 10
	maxEvictions  = 100
)

// Policy deletes a bounded batch of the oldest indexed entries. It runs
// synchronously inline with a failed write, at most once per originating
// request.
type Policy struct {
	store  kv.Store
	index  *timeindex.Index
	logger *zap.Logger
}

// New creates an eviction policy over the given store and ledger.
func New(store kv.Store, index *timeindex.Index, logger *zap.Logger) *Policy {
	return &Policy{store: store, index: index, logger: logger}
}

// EvictOldest removes the oldest 10% of indexed entries, clamped to
// [10, 100]. It reports whether anything was evicted, which is the signal
// that the caller may retry its write. Individual delete failures are
// logged and do not abort the batch; the run only fails when the ledger
// itself is empty or absent.
func (p *Policy) EvictOldest(ctx context.Context) bool {
	n := p.index.Len(ctx)
	if n == 0 {
		p.logger.Warn("store full but time index is empty, nothing to evict")

		return false
	}

	count := int(float64(n) * evictFraction)
	if count < minEvictions {
		count = minEvictions
	}

	if count > maxEvictions {
		count = maxEvictions
	}

	popped := p.index.PopOldest(ctx, count)
	if len(popped) == 0 {
		return false
	}

	deleted := 0

	for _, rec := range popped {
		key := storageKey(rec)
		if err := p.store.Delete(ctx, key); err != nil {
			p.logger.Warn("failed to delete evicted entry",
				zap.String("key", key),
				zap.Error(err),
			)

			continue
		}

		deleted++
	}

	p.logger.Info("evicted oldest entries",
		zap.Int("popped", len(popped)),
		zap.Int("deleted", deleted),
	)

	return true
}

// storageKey rebuilds the entry key from a ledger record. Records written
// before notes existed carry no kind and default to the url namespace.
func storageKey(rec timeindex.Record) string {
	kind := rec.Kind
	if kind != "note" {
		kind = "url"
	}

	return kind + ":" + rec.Slug
}
