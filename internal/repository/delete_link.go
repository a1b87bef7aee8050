package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
)

func (r Repository) DeleteLink(ctx context.Context, code model.Code) error {
	if err := r.underlying.Delete(ctx, linkKey(code)); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}
