package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/handler"
	"go.uber.org/zap"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	storage storage
	handler *handler.Handler
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &App{
		config:  cfg,
		logger:  logger,
		storage: storage,
		handler: initHandler(storage, cfg, logger),
	}, nil
}

// Run запускает приложение и блокируется до получения сигнала остановки
func Run() error {
	ctx, stop := newSignalContext()
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы хранилища
func (a *App) Close() {
	if a.storage == nil {
		return
	}

	if err := a.storage.Close(); err != nil {
		a.logger.Error("Failed to close storage", zap.Error(err))
		return
	}
	a.logger.Info("Storage closed")
}
