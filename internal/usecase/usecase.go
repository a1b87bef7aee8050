package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkService

// LinkService определяет интерфейс сервиса управления ссылками
type LinkService interface {
	Create(ctx context.Context, rawURL, customSlug, identity string) (model.LinkRecord, error)
	Lookup(ctx context.Context, code model.Code) (model.LinkRecord, error)
	Delete(ctx context.Context, code model.Code) error
	HasUsedCustomSlug(ctx context.Context, identity string) (bool, error)
	Ping(ctx context.Context) error
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	service LinkService
	cfg     *config.Config
	logger  *zap.Logger
	newID   func() string
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service LinkService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service: service,
		cfg:     cfg,
		logger:  logger,
		newID:   newResponseID,
	}
}

// Ping проверяет доступность хранилища
func (u *URLUsecase) Ping(ctx context.Context) error {
	if err := u.service.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return nil
}
