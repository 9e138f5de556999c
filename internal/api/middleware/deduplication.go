package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"
)

var (
	// 最近提交過的匯入請求指紋
	recentImports = struct {
		sync.RWMutex
		seen map[string]time.Time
	}{
		seen: make(map[string]time.Time),
	}

	dedupCleanupOnce sync.Once
)

func startDeduplicationCleanup(window time.Duration) {
	dedupCleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				recentImports.Lock()
				for k, t := range recentImports.seen {
					if now.Sub(t) > 10*window {
						delete(recentImports.seen, k)
					}
				}
				recentImports.Unlock()
			}
		}()
	})
}

// Deduplication 匯入請求去重中間件
// 同一個連結或同一段文字在短窗口內重複送出時直接擋下，
// 免得替完全相同的內容再打一次 AI 供應商
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	window := 1 * time.Second
	if cfg != nil && cfg.DedupWindow > 0 {
		window = cfg.DedupWindow
	}
	startDeduplicationCleanup(window)

	return func(c *gin.Context) {
		// 匯入都走 POST，其他方法不用去重
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("讀取請求體失敗", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		now := time.Now()
		recentImports.RLock()
		lastTime, exists := recentImports.seen[fingerprint]
		recentImports.RUnlock()
		if exists && now.Sub(lastTime) <= window {
			common.LogWarn("重複的匯入請求",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("間隔", now.Sub(lastTime)),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrorResponse{
				Code:    common.ErrCodeTooManyRequests,
				Message: common.ErrTooManyRequests.Message,
				Hint:    "同樣的匯入請求剛剛才送出，請稍候再試",
			})
			return
		}

		recentImports.Lock()
		recentImports.seen[fingerprint] = now
		recentImports.Unlock()

		c.Next()
	}
}
