package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// RetryConfig настройки повторов при коллизии сгенерированного кода
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

// Config конфигурация сервиса. Переменные окружения имеют приоритет над флагами.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	LogLevel        string         `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	PurgeInterval   time.Duration  `env:"PURGE_INTERVAL"`

	Redis RedisConfig
	Retry RetryConfig
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		PurgeInterval:   10 * time.Minute,
		Retry: RetryConfig{
			MaxAttempts: 5,
		},
	}
}

// Load собирает конфигурацию из аргументов командной строки и окружения
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to storage file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.Redis.Address, "r", cfg.Redis.Address, "redis address host:port")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if cfg.Retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("invalid retry max attempts: %d", cfg.Retry.MaxAttempts)
	}

	return cfg, nil
}
