package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку по коду. Повторное удаление успешно.
func (u *URLUsecase) DeleteLink(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyCode
	}

	if err := u.service.Delete(ctx, model.Code(code)); err != nil {
		u.logger.Error("failed to delete short link",
			zap.String("code", code),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short link deleted", zap.String("code", code))

	return nil
}
