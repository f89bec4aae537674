// Package cache wraps a Redis client for small JSON-encoded lookups.
package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/config"
	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

type Service struct {
	client *redis.Client
	logger *zap.Logger
}

func NewService(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   constants.CacheConfig.MaxRetries,
		DialTimeout:  constants.CacheConfig.DialTimeout,
		ReadTimeout:  constants.CacheConfig.ReadTimeout,
		WriteTimeout: constants.CacheConfig.WriteTimeout,
		PoolSize:     constants.CacheConfig.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, constants.CacheConfig.PingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
	)

	return &Service{
		client: client,
		logger: logger,
	}, nil
}

// Get decodes the value stored at key into dest. A missing key reports
// found=false with a nil error.
func (s *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		s.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if err := json.Unmarshal(value, dest); err != nil {
		s.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("unmarshal failed", "get", key, err)
	}
	return true, nil
}

// Set stores value at key. A ttl of zero keeps the key until evicted.
func (s *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.client.Close()
}
