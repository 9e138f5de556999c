package cache

import (
	"context"
	"fmt"

	"recipe-importer/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// redisStore Redis 快取，多副本部署時共用
type redisStore struct {
	client *redis.Client
	config *config.Config
}

// newRedisStore 創建 Redis 快取
func newRedisStore(cfg *config.Config) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logBackend("redis", cfg)
	return &redisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set 設置緩存
func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *redisStore) Close() error {
	return s.client.Close()
}
