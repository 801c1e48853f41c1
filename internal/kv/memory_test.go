package kv_test

import (
	"context"
	"testing"

	"github.com/slinkhq/slink/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGet(t *testing.T) {
	t.Run("stores and returns a value", func(t *testing.T) {
		s := kv.NewMemoryStore(0)

		err := s.Put(context.Background(), "url:abc123", []byte(`{"slug":"abc123"}`))
		require.NoError(t, err)

		value, err := s.Get(context.Background(), "url:abc123")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"slug":"abc123"}`), value)
	})

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		s := kv.NewMemoryStore(0)

		value, err := s.Get(context.Background(), "url:missing")

		assert.Nil(t, value)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		s := kv.NewMemoryStore(0)
		_ = s.Put(context.Background(), "k", []byte("one"))

		err := s.Put(context.Background(), "k", []byte("two"))
		require.NoError(t, err)

		value, _ := s.Get(context.Background(), "k")
		assert.Equal(t, []byte("two"), value)
	})
}

func TestMemoryStore_Capacity(t *testing.T) {
	t.Run("rejects new keys above capacity", func(t *testing.T) {
		s := kv.NewMemoryStore(2)
		require.NoError(t, s.Put(context.Background(), "a", []byte("1")))
		require.NoError(t, s.Put(context.Background(), "b", []byte("2")))

		err := s.Put(context.Background(), "c", []byte("3"))

		assert.ErrorIs(t, err, kv.ErrCapacityExceeded)
	})

	t.Run("allows overwrites at capacity", func(t *testing.T) {
		s := kv.NewMemoryStore(1)
		require.NoError(t, s.Put(context.Background(), "a", []byte("1")))

		err := s.Put(context.Background(), "a", []byte("2"))

		require.NoError(t, err)
	})

	t.Run("delete frees room for new keys", func(t *testing.T) {
		s := kv.NewMemoryStore(1)
		require.NoError(t, s.Put(context.Background(), "a", []byte("1")))
		require.NoError(t, s.Delete(context.Background(), "a"))

		err := s.Put(context.Background(), "b", []byte("2"))

		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Run("deleting a missing key is not an error", func(t *testing.T) {
		s := kv.NewMemoryStore(0)

		err := s.Delete(context.Background(), "nope")

		require.NoError(t, err)
	})
}
