package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// runPurgeLoop периодически удаляет истёкшие записи, пока ctx не отменён
func runPurgeLoop(ctx context.Context, purger expiredPurger, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := purger.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("Failed to purge expired entries", zap.Error(err))
				continue
			}
			if purged > 0 {
				logger.Debug("Purged expired entries", zap.Int64("count", purged))
			}
		}
	}
}
