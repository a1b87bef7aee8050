package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goRedis "github.com/redis/go-redis/v9"
)

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// RedisStore реализует key-value хранилище поверх Redis с нативным TTL
type RedisStore struct {
	redisClient *goRedis.Client
}

// NewRedisStore подключается к Redis и проверяет соединение
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	redisClient := goRedis.NewClient(&goRedis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, errors.Wrap(err, "redis connect failed")
	}
	return &RedisStore{redisClient: redisClient}, nil
}

func (rs *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := rs.redisClient.Get(ctx, key).Result()
	if err == goRedis.Nil {
		return "", errors.Wrapf(ErrNotFound, "key %s", key)
	} else if err != nil {
		return "", errors.Wrap(err, "get redis failed")
	}
	return val, nil
}

func (rs *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := rs.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "set redis failed")
	}
	return nil
}

func (rs *RedisStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := rs.redisClient.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "setnx redis failed")
	}
	return ok, nil
}

func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.redisClient.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "del redis failed")
	}
	return nil
}

func (rs *RedisStore) Ping(ctx context.Context) error {
	if err := rs.redisClient.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping redis failed")
	}
	return nil
}

func (rs *RedisStore) Close() error {
	return rs.redisClient.Close()
}
