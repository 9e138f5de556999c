package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrCacheMiss 查無快取
var ErrCacheMiss = errors.New("cache miss")

// Store AI 回應快取
// 快取的是供應商的原始文字回應，整形（normalize）是確定性的，
// 所以快取不會改變管線語義
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New 依設定建立快取，關閉時回傳 nil
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return newRedisStore(cfg)
	default:
		return newMemoryStore(cfg), nil
	}
}

// Key 以內容雜湊生成快取鍵
func Key(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "extract:" + hex.EncodeToString(hash[:])
}

func logBackend(backend string, cfg *config.Config) {
	common.LogInfo("快取已初始化",
		zap.String("backend", backend),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)
}
