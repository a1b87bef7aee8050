package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newResponseID() string {
	return uuid.New().String()
}

// CreateShortLink создает короткую ссылку для запроса от identity
func (u *URLUsecase) CreateShortLink(ctx context.Context, req model.ShortenRequest, identity string) (model.ShortenResponse, error) {
	rawURL, slug := req.URL, req.CustomSlug
	if rawURL == "" {
		return model.ShortenResponse{}, ErrEmptyURL
	}

	record, err := u.service.Create(ctx, rawURL, slug, identity)
	if err != nil {
		return model.ShortenResponse{}, u.translateCreateError(err, rawURL, slug, identity)
	}

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), record.Code.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", record.Code.String()),
			zap.Error(err),
		)
		return model.ShortenResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short link created",
		zap.String("code", record.Code.String()),
		zap.Bool("custom_slug", record.IsCustomSlug),
		zap.Time("expires_at", record.ExpiresAt),
	)

	return model.ShortenResponse{
		ID:           u.newID(),
		ShortCode:    record.Code.String(),
		ShortURL:     shortURL,
		OriginalURL:  record.URL.String(),
		ExpiresAt:    record.ExpiresAt.UnixMilli(),
		IsCustomSlug: record.IsCustomSlug,
	}, nil
}

func (u *URLUsecase) translateCreateError(err error, rawURL, slug, identity string) error {
	switch {
	case errors.Is(err, service.ErrInvalidURL):
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	case errors.Is(err, service.ErrInvalidSlug):
		return fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	case errors.Is(err, service.ErrQuotaExceeded):
		u.logger.Debug("custom slug quota exceeded", zap.String("identity", identity))
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case errors.Is(err, service.ErrSlugTaken):
		u.logger.Debug("custom slug taken", zap.String("slug", slug))
		return fmt.Errorf("%w: %w", ErrSlugTaken, err)
	}

	u.logger.Error("failed to create short link",
		zap.String("original_url", rawURL),
		zap.String("custom_slug", slug),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
