package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"go.uber.org/zap"
)

// ResolveRedirect возвращает адрес для редиректа по короткому коду.
// Отсутствующая или истёкшая ссылка даёт ErrURLNotFound.
func (u *URLUsecase) ResolveRedirect(ctx context.Context, code string) (string, error) {
	record, err := u.service.Lookup(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			u.logger.Debug("short link not found", zap.String("code", code))
			return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		u.logger.Error("failed to resolve short link",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return record.URL.String(), nil
}
