package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/migrations"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"go.uber.org/zap"
)

// storage хранилище, которое приложение закрывает при остановке
type storage interface {
	repository.Store
	Close() error
}

// expiredPurger реализуют хранилища без нативного TTL
type expiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// initHandler собирает слои приложения поверх хранилища
func initHandler(storage repository.Store, cfg *config.Config, logger *zap.Logger) *handler.Handler {
	repo := repository.New(storage)
	linkService := service.NewLinkService(repo, cfg, logger)
	urlUsecase := usecase.NewURLUsecase(linkService, cfg, logger)
	return handler.New(urlUsecase, logger)
}

// initStorage выбирает хранилище: Redis, PostgreSQL, файл, память
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage, error) {
	switch {
	case cfg.Redis.Address != "":
		redisStore, err := store.NewRedisStore(ctx, store.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		logger.Info("Using redis storage", zap.String("address", cfg.Redis.Address))
		return redisStore, nil

	case cfg.DatabaseDSN != "":
		databaseStore, err := initDatabaseStore(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using database storage")
		return databaseStore, nil

	case cfg.FileStoragePath != "":
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

func initDatabaseStore(ctx context.Context, dsn string, logger *zap.Logger) (*store.DatabaseStore, error) {
	database, err := db.NewConfig(dsn).Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return store.NewDatabaseStore(database), nil
}
