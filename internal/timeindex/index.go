// Package timeindex maintains an ordered ledger of live slugs layered over
// the key-value store. The store has no native range queries, so oldest-first
// eviction is only possible through this hand-maintained index.
//
// The ledger is strictly best-effort: it is read-modify-written without any
// locking, concurrent writers can lose updates, and every consumer must
// tolerate stale or missing records. Its own failures never propagate to the
// operation that triggered the update.
package timeindex

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/slinkhq/slink/internal/kv"
	"go.uber.org/zap"
)

// Key is the storage key holding the ledger.
const Key = "time_index"

// maxRecords caps the ledger; the oldest records are dropped beyond it.
const maxRecords = 10000

// Record is one ledger row. Kind is the entry's namespace prefix ("url" or
// "note"); records written before notes existed omit it.
type Record struct {
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	Kind      string    `json:"type,omitempty"`
}

// Index is the ledger over a kv.Store.
type Index struct {
	store  kv.Store
	logger *zap.Logger
}

// New creates a time index over the given store.
func New(store kv.Store, logger *zap.Logger) *Index {
	return &Index{store: store, logger: logger}
}

// Append adds a record, keeps the ledger sorted ascending by creation time,
// and trims it to the retention cap. Every step is best-effort: failures are
// logged and swallowed so the caller's primary operation is never affected.
func (ix *Index) Append(ctx context.Context, rec Record) {
	records, err := ix.load(ctx)
	if err != nil {
		ix.logger.Warn("time index read failed, skipping append",
			zap.String("slug", rec.Slug),
			zap.Error(err),
		)

		return
	}

	records = append(records, rec)

	// Concurrent writers can interleave appends out of order; re-sorting on
	// every append keeps the front of the ledger the oldest.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	if len(records) > maxRecords {
		records = records[len(records)-maxRecords:]
	}

	if err := ix.write(ctx, records); err != nil {
		ix.logger.Warn("time index write failed",
			zap.String("slug", rec.Slug),
			zap.Error(err),
		)
	}
}

// PopOldest removes up to max records from the front of the ledger, writes
// back the remainder and returns the removed slice. An absent or empty
// ledger yields an empty result.
func (ix *Index) PopOldest(ctx context.Context, max int) []Record {
	records, err := ix.load(ctx)
	if err != nil {
		ix.logger.Warn("time index read failed, nothing to pop", zap.Error(err))

		return nil
	}

	if len(records) == 0 || max <= 0 {
		return nil
	}

	if max > len(records) {
		max = len(records)
	}

	popped := records[:max]

	if err := ix.write(ctx, records[max:]); err != nil {
		// The popped entries are still handed to the caller: eviction
		// tolerates a stale ledger, and deleting them is more important
		// than perfect bookkeeping.
		ix.logger.Warn("time index write failed after pop", zap.Error(err))
	}

	return popped
}

// Len returns the current ledger length, 0 when absent or unreadable.
func (ix *Index) Len(ctx context.Context) int {
	records, err := ix.load(ctx)
	if err != nil {
		return 0
	}

	return len(records)
}

func (ix *Index) load(ctx context.Context) ([]Record, error) {
	data, err := ix.store.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (ix *Index) write(ctx context.Context, records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return ix.store.Put(ctx, Key, data)
}
