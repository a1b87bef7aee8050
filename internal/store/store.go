package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("key not found")
)

// entry значение с абсолютным временем истечения; нулевое время означает бессрочную запись
type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store in-memory key-value хранилище с TTL.
// Истёкшие ключи удаляются лениво при обращении.
type Store struct {
	store map[string]entry
	mutex sync.Mutex
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		store: make(map[string]entry),
		now:   time.Now,
	}
}

func (s *Store) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// lookup возвращает живую запись; вызывать под мьютексом
func (s *Store) lookup(key string) (entry, bool) {
	e, ok := s.store[key]
	if !ok {
		return entry{}, false
	}
	if e.expired(s.now()) {
		delete(s.store, key)
		return entry{}, false
	}
	return e, true
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	return e.value, nil
}

func (s *Store) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store[key] = entry{value: value, expiresAt: s.expiry(ttl)}

	return nil
}

// SetNX записывает значение только если ключ отсутствует или истёк
func (s *Store) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.lookup(key); exists {
		return false, nil
	}

	s.store[key] = entry{value: value, expiresAt: s.expiry(ttl)}

	return true, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.store, key)

	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) exists(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.lookup(key)
	return ok
}

// restore кладёт запись как есть, без проверок; используется при загрузке из файла
func (s *Store) restore(key, value string, expiresAt time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := entry{value: value, expiresAt: expiresAt}
	if e.expired(s.now()) {
		delete(s.store, key)
		return
	}
	s.store[key] = e
}

// PurgeExpired удаляет все истёкшие ключи и возвращает их количество
func (s *Store) PurgeExpired(_ context.Context) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	var purged int64
	for key, e := range s.store {
		if e.expired(now) {
			delete(s.store, key)
			purged++
		}
	}

	return purged, nil
}
