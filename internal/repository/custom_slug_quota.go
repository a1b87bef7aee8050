package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/store"
)

// ClaimCustomSlugQuota атомарно помечает, что identity использовал свой слаг.
// Возвращает false, если отметка уже стоит.
func (r Repository) ClaimCustomSlugQuota(ctx context.Context, identity string) (bool, error) {
	claimed, err := r.underlying.SetNX(ctx, customSlugKey(identity), customSlugUsedValue, 0)
	if err != nil {
		return false, fmt.Errorf("failed to claim custom slug quota: %w", err)
	}

	return claimed, nil
}

func (r Repository) HasUsedCustomSlug(ctx context.Context, identity string) (bool, error) {
	value, err := r.underlying.Get(ctx, customSlugKey(identity))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check custom slug quota: %w", err)
	}

	return value == customSlugUsedValue, nil
}

func (r Repository) ReleaseCustomSlugQuota(ctx context.Context, identity string) error {
	if err := r.underlying.Delete(ctx, customSlugKey(identity)); err != nil {
		return fmt.Errorf("failed to release custom slug quota: %w", err)
	}

	return nil
}
