package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	s := NewStore()
	s.now = clock.Now

	return s, clock
}

func TestStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) (kvStore, func(time.Duration)) {
		s, clock := newTestStore(t)
		return s, clock.Advance
	})
}

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	s := NewStore()

	require.NotNil(t, s)
	assert.Empty(t, s.store)
}

// TestStore_LazyExpiry проверяет удаление истёкшего ключа при чтении
func TestStore_LazyExpiry(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, clock := newTestStore(t)
	require.NoError(t, s.Set(ctx, "url:abc123", "v", time.Minute))

	// Act
	clock.Advance(time.Minute)
	_, err := s.Get(ctx, "url:abc123")

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, s.store, "url:abc123")
}

// TestStore_PurgeExpired проверяет периодическую чистку
func TestStore_PurgeExpired(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, clock := newTestStore(t)
	require.NoError(t, s.Set(ctx, "url:a", "v", time.Minute))
	require.NoError(t, s.Set(ctx, "url:b", "v", time.Minute))
	require.NoError(t, s.Set(ctx, "url:c", "v", time.Hour))
	require.NoError(t, s.Set(ctx, "custom_slug_used:x", "true", 0))

	// Act
	clock.Advance(2 * time.Minute)
	purged, err := s.PurgeExpired(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)
	assert.Len(t, s.store, 2)
}

// TestStore_RestoreSkipsExpired проверяет, что восстановление не возвращает истёкшие записи
func TestStore_RestoreSkipsExpired(t *testing.T) {
	s, clock := newTestStore(t)

	s.restore("url:live", "v", clock.Now().Add(time.Hour))
	s.restore("url:dead", "v", clock.Now().Add(-time.Hour))
	s.restore("custom_slug_used:x", "true", time.Time{})

	assert.Contains(t, s.store, "url:live")
	assert.NotContains(t, s.store, "url:dead")
	assert.Contains(t, s.store, "custom_slug_used:x")
}
