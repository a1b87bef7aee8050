package usecase

import (
	"context"
	"fmt"
)

// HasUsedCustomSlug сообщает, потрачен ли бесплатный слаг для identity
func (u *URLUsecase) HasUsedCustomSlug(ctx context.Context, identity string) (bool, error) {
	used, err := u.service.HasUsedCustomSlug(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return used, nil
}
