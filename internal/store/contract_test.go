package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// fakeClock управляемые часы для хранилищ в памяти
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// runStoreContract проверяет поведение, общее для всех хранилищ.
// advance сдвигает время хранилища; nil отключает проверки TTL.
func runStoreContract(t *testing.T, newStore func(t *testing.T) (kvStore, func(time.Duration))) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s, _ := newStore(t)

		_, err := s.Get(ctx, "url:missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		s, _ := newStore(t)

		require.NoError(t, s.Set(ctx, "url:abc123", `{"url":"https://example.com"}`, time.Hour))

		value, err := s.Get(ctx, "url:abc123")
		require.NoError(t, err)
		assert.Equal(t, `{"url":"https://example.com"}`, value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s, _ := newStore(t)

		require.NoError(t, s.Set(ctx, "custom_slug_used:1.2.3.4", "false", 0))
		require.NoError(t, s.Set(ctx, "custom_slug_used:1.2.3.4", "true", 0))

		value, err := s.Get(ctx, "custom_slug_used:1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, "true", value)
	})

	t.Run("setnx only when absent", func(t *testing.T) {
		s, _ := newStore(t)

		ok, err := s.SetNX(ctx, "url:my-link", "first", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.SetNX(ctx, "url:my-link", "second", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)

		value, err := s.Get(ctx, "url:my-link")
		require.NoError(t, err)
		assert.Equal(t, "first", value)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s, _ := newStore(t)

		require.NoError(t, s.Set(ctx, "url:abc123", "v", time.Hour))
		require.NoError(t, s.Delete(ctx, "url:abc123"))
		require.NoError(t, s.Delete(ctx, "url:abc123"))
		require.NoError(t, s.Delete(ctx, "url:never-existed"))

		_, err := s.Get(ctx, "url:abc123")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		s, _ := newStore(t)

		assert.NoError(t, s.Ping(ctx))
	})

	t.Run("concurrent setnx has one winner", func(t *testing.T) {
		s, _ := newStore(t)

		const workers = 20
		var wins atomic.Int32
		var wg sync.WaitGroup

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := s.SetNX(ctx, "url:race", "v", time.Hour)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("ttl expiry", func(t *testing.T) {
		s, advance := newStore(t)
		if advance == nil {
			t.Skip("store time cannot be moved")
		}

		require.NoError(t, s.Set(ctx, "url:short", "v", 24*time.Hour))
		require.NoError(t, s.Set(ctx, "custom_slug_used:1.2.3.4", "true", 0))

		advance(24*time.Hour - time.Second)
		_, err := s.Get(ctx, "url:short")
		require.NoError(t, err, "still alive before ttl")

		advance(2 * time.Second)
		_, err = s.Get(ctx, "url:short")
		assert.ErrorIs(t, err, ErrNotFound)

		value, err := s.Get(ctx, "custom_slug_used:1.2.3.4")
		require.NoError(t, err, "zero ttl never expires")
		assert.Equal(t, "true", value)
	})

	t.Run("setnx over expired key", func(t *testing.T) {
		s, advance := newStore(t)
		if advance == nil {
			t.Skip("store time cannot be moved")
		}

		ok, err := s.SetNX(ctx, "url:reuse", "old", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		advance(2 * time.Minute)

		ok, err = s.SetNX(ctx, "url:reuse", "new", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		value, err := s.Get(ctx, "url:reuse")
		require.NoError(t, err)
		assert.Equal(t, "new", value)
	})
}
