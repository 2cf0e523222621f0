package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	store := NewRedis(RedisConfig{Addr: srv.Addr(), KeyPrefix: "test:"})
	t.Cleanup(func() { _ = store.Close() })
	return store, srv
}

func TestRedis_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestRedis(t)

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Set(ctx, "k", "v", 0))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.True(t, srv.Exists("test:k"), "key should carry the configured prefix")

	require.NoError(t, store.Remove(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "session", "abc", time.Minute))
	assert.Equal(t, time.Minute, srv.TTL("test:session"))

	srv.FastForward(time.Minute)
	_, err := store.Get(ctx, "session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestRedis(t)
	srv.Close()

	_, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, store.Ping(ctx))
}
