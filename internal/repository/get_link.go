package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
)

func (r Repository) GetLink(ctx context.Context, code model.Code) (model.LinkRecord, error) {
	data, err := r.underlying.Get(ctx, linkKey(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.LinkRecord{}, fmt.Errorf("code %s: %w", code, ErrLinkNotFound)
		}
		return model.LinkRecord{}, fmt.Errorf("failed to get link: %w", err)
	}

	var record model.LinkRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return model.LinkRecord{}, fmt.Errorf("failed to decode link record %s: %w", code, err)
	}

	return record, nil
}
