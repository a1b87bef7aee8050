package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
)

// CreateLink сохраняет запись под ключом url:<code>, если код свободен.
// Возвращает ErrCodeExists, если под этим кодом уже есть живая запись.
func (r Repository) CreateLink(ctx context.Context, record model.LinkRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode link record: %w", err)
	}

	created, err := r.underlying.SetNX(ctx, linkKey(record.Code), string(data), ttl)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	if !created {
		return fmt.Errorf("code %s: %w", record.Code, ErrCodeExists)
	}

	return nil
}
