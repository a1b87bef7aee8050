package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rs, err := NewRedisStore(context.Background(), RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rs.Close() })

	return rs, mr
}

func TestRedisStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) (kvStore, func(time.Duration)) {
		rs, mr := newTestRedisStore(t)
		return rs, mr.FastForward
	})
}

// TestRedisStore_TTL проверяет, что срок жизни ставится нативно
func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedisStore(t)

	ok, err := rs.SetNX(ctx, "url:aB3xZ9", "v", 24*time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, rs.Set(ctx, "custom_slug_used:1.2.3.4", "true", 0))

	assert.Equal(t, 24*time.Hour, mr.TTL("url:aB3xZ9"))
	assert.Equal(t, time.Duration(0), mr.TTL("custom_slug_used:1.2.3.4"))
}

// TestRedisStore_ServerDown проверяет, что сбой транспорта не выглядит как отсутствие ключа
func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedisStore(t)
	mr.Close()

	_, err := rs.Get(ctx, "url:abc123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = rs.SetNX(ctx, "url:abc123", "v", time.Hour)
	assert.Error(t, err)

	assert.Error(t, rs.Ping(ctx))
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisStore(context.Background(), RedisConfig{Address: addr})

	assert.Error(t, err)
}
