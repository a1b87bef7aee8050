package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// Изменения и запись в журнал выполняются под одним мьютексом,
// поэтому порядок строк журнала совпадает с порядком операций.
// Память меняется только после успешной записи в журнал.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mu          sync.Mutex
}

// NewFileStore создаёт FileStore и восстанавливает состояние из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// loadFromFile проигрывает журнал; истёкшие записи отбрасываются
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	for _, e := range entries {
		switch e.Op {
		case opSet:
			var expiresAt time.Time
			if e.ExpiresAt != nil {
				expiresAt = *e.ExpiresAt
			}
			fs.store.restore(e.Key, e.Value, expiresAt)
		case opDel:
			_ = fs.store.Delete(context.Background(), e.Key)
		}
	}

	return nil
}

func (fs *FileStore) Get(ctx context.Context, key string) (string, error) {
	return fs.store.Get(ctx, key)
}

func (fs *FileStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	expiresAt := fs.store.expiry(ttl)
	if err := fs.appendSet(key, value, expiresAt); err != nil {
		return err
	}
	fs.store.restore(key, value, expiresAt)

	return nil
}

func (fs *FileStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.store.exists(key) {
		return false, nil
	}

	expiresAt := fs.store.expiry(ttl)
	if err := fs.appendSet(key, value, expiresAt); err != nil {
		return false, err
	}
	fs.store.restore(key, value, expiresAt)

	return true, nil
}

func (fs *FileStore) Delete(ctx context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.fileStorage.Append(logEntry{Op: opDel, Key: key}); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return fs.store.Delete(ctx, key)
}

// PurgeExpired чистит память; журнал не переписывается, истёкшие строки
// отбрасываются при следующей загрузке
func (fs *FileStore) PurgeExpired(ctx context.Context) (int64, error) {
	return fs.store.PurgeExpired(ctx)
}

func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

func (fs *FileStore) Close() error {
	return nil
}

func (fs *FileStore) appendSet(key, value string, expiresAt time.Time) error {
	e := logEntry{Op: opSet, Key: key, Value: value}
	if !expiresAt.IsZero() {
		utc := expiresAt.UTC()
		e.ExpiresAt = &utc
	}

	if err := fs.fileStorage.Append(e); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}
