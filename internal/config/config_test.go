package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress.String())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL.String())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Minute, cfg.PurgeInterval)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load([]string{
		"-a", ":9090",
		"-b", "https://sho.rt/",
		"-f", "/tmp/links.jsonl",
		"-d", "postgres://localhost/links",
		"-r", "localhost:6379",
		"-l", "debug",
	})

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress.String())
	assert.Equal(t, "https://sho.rt", cfg.BaseURL.String())
	assert.Equal(t, "/tmp/links.jsonl", cfg.FileStoragePath)
	assert.Equal(t, "postgres://localhost/links", cfg.DatabaseDSN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFlags(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8181")
	t.Setenv("BASE_URL", "https://env.example")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PURGE_INTERVAL", "1m")

	cfg, err := load([]string{"-a", "localhost:9090", "-b", "https://flag.example", "-r", "other:6379"})

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8181", cfg.ServerAddress.String())
	assert.Equal(t, "https://env.example", cfg.BaseURL.String())
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Minute, cfg.PurgeInterval)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad flag address", func(t *testing.T) {
		_, err := load([]string{"-a", "no-port"})
		assert.Error(t, err)
	})

	t.Run("bad flag base URL", func(t *testing.T) {
		_, err := load([]string{"-b", "ftp://example.com"})
		assert.Error(t, err)
	})

	t.Run("bad env base URL", func(t *testing.T) {
		t.Setenv("BASE_URL", "example.com")
		_, err := load(nil)
		assert.Error(t, err)
	})

	t.Run("zero retry attempts", func(t *testing.T) {
		t.Setenv("RETRY_MAX_ATTEMPTS", "0")
		_, err := load(nil)
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := load([]string{"-z"})
		assert.Error(t, err)
	})
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		value   string
		host    string
		port    int
		wantErr bool
	}{
		{value: "localhost:8080", host: "localhost", port: 8080},
		{value: ":80", host: "", port: 80},
		{value: "[::1]:443", host: "::1", port: 443},
		{value: "localhost", wantErr: true},
		{value: "localhost:http", wantErr: true},
		{value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
			assert.Equal(t, tt.value, addr.String())
		})
	}
}
