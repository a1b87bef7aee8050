package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Срок жизни считается на стороне PostgreSQL (now()), чтобы все инстансы
// сервиса опирались на одни часы.
const expiresAtExpr = `CASE WHEN $3::double precision > 0
	THEN now() + make_interval(secs => $3::double precision) END`

// DatabaseStore реализует key-value хранилище поверх таблицы kv_entries
type DatabaseStore struct {
	database db.Database
	pool     *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	return &DatabaseStore{
		database: database,
		pool:     database.Pool(),
	}
}

func ttlSeconds(ttl time.Duration) float64 {
	if ttl <= 0 {
		return 0
	}
	return ttl.Seconds()
}

// Get читает живое значение по ключу
func (ds *DatabaseStore) Get(ctx context.Context, key string) (string, error) {
	var value string

	query := `
		SELECT value
		FROM kv_entries
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())
	`

	err := ds.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read from database: %w", err)
	}

	return value, nil
}

// Set записывает значение, перезаписывая существующее
func (ds *DatabaseStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	query := `
		INSERT INTO kv_entries (key, value, expires_at)
		VALUES ($1, $2, ` + expiresAtExpr + `)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
	`

	if _, err := ds.pool.Exec(ctx, query, key, value, ttlSeconds(ttl)); err != nil {
		return fmt.Errorf("failed to upsert into database: %w", err)
	}

	return nil
}

// SetNX вставляет значение, если ключа нет или его срок истёк.
// Истёкшая строка перезаписывается в том же запросе.
func (ds *DatabaseStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	query := `
		INSERT INTO kv_entries (key, value, expires_at)
		VALUES ($1, $2, ` + expiresAtExpr + `)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
		WHERE kv_entries.expires_at IS NOT NULL AND kv_entries.expires_at <= now()
	`

	tag, err := ds.pool.Exec(ctx, query, key, value, ttlSeconds(ttl))
	if err != nil {
		return false, fmt.Errorf("failed to insert into database: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (ds *DatabaseStore) Delete(ctx context.Context, key string) error {
	if _, err := ds.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete from database: %w", err)
	}

	return nil
}

// PurgeExpired удаляет истёкшие строки и возвращает их количество
func (ds *DatabaseStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM kv_entries WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired entries: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.database.Ping(ctx)
}

func (ds *DatabaseStore) Close() error {
	ds.database.Close()
	return nil
}
