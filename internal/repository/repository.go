package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
)

const (
	urlKeyPrefix        = "url:"
	customSlugKeyPrefix = "custom_slug_used:"

	customSlugUsedValue = "true"
)

var (
	ErrCodeExists   = errors.New("code already exists")
	ErrLinkNotFound = errors.New("link not found")
)

//go:generate mockery --name Store

// Store key-value хранилище с поддержкой TTL и атомарной записи "если нет"
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func linkKey(code model.Code) string {
	return urlKeyPrefix + string(code)
}

func customSlugKey(identity string) string {
	return customSlugKeyPrefix + identity
}

func (r Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
