package kv

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of Store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return value, nil
}

func (r *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		if isRedisOOM(err) {
			return ErrCapacityExceeded
		}

		return err
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// isRedisOOM reports whether the error is Redis refusing a write because
// used memory exceeds maxmemory. Redis signals this as a plain error reply,
// so the message text is the only discriminator available.
func isRedisOOM(err error) bool {
	msg := err.Error()

	return strings.Contains(msg, "OOM") || strings.Contains(msg, "maxmemory")
}

// Compile-time check.
var _ Store = (*RedisStore)(nil)
