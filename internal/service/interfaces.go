package service

import (
	"context"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
)

//go:generate mockery --name LinkRepository

// LinkRepository определяет методы для работы с хранилищем ссылок и квот
type LinkRepository interface {
	// CreateLink сохраняет запись, если код свободен.
	// Возвращает repository.ErrCodeExists если под кодом уже есть живая запись.
	CreateLink(ctx context.Context, record model.LinkRecord, ttl time.Duration) error
	GetLink(ctx context.Context, code model.Code) (model.LinkRecord, error)
	DeleteLink(ctx context.Context, code model.Code) error
	// ClaimCustomSlugQuota возвращает false, если квота уже занята
	ClaimCustomSlugQuota(ctx context.Context, identity string) (bool, error)
	HasUsedCustomSlug(ctx context.Context, identity string) (bool, error)
	ReleaseCustomSlugQuota(ctx context.Context, identity string) error
	Ping(ctx context.Context) error
}
