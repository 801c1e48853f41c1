package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// ErrCapacityExceeded is returned by Put when the backend refuses the write
// because it is out of space. Callers may free space and retry.
var ErrCapacityExceeded = errors.New("store capacity exceeded")

// Store is the minimal key-value contract the service persists through.
// No transactions and no multi-key atomicity are assumed; every key is
// independently read-modify-written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
