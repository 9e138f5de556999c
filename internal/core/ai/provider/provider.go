package provider

import (
	"context"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// CompletionProvider 生成式文字供應商
// 兩個實作（Workers AI、OpenRouter）可互換，由設定在啟動時選定其一
type CompletionProvider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Resolve 依設定解析出本次部署使用的供應商
// 這是建構期的一次性選擇，不是執行期的健康檢查容錯：
// 主要供應商已設定就只用它，請求失敗也不會換到備援；
// 只有主要供應商完全未設定時才改用備援。
// 兩者都未設定時回傳 nil，由呼叫端在請求時回報 NoProviderConfigured
func Resolve(cfg *config.Config) CompletionProvider {
	if cfg.WorkersAI.Configured() {
		common.LogInfo("AI 供應商已選定",
			zap.String("供應商", "workers_ai"),
			zap.String("model", cfg.WorkersAI.Model),
		)
		return NewWorkersAIClient(cfg)
	}

	if cfg.OpenRouter.Configured() {
		common.LogInfo("AI 供應商已選定（備援）",
			zap.String("供應商", "openrouter"),
			zap.String("model", cfg.OpenRouter.Model),
		)
		return NewOpenRouterClient(cfg)
	}

	common.LogWarn("未設定任何 AI 供應商，匯入請求將回報錯誤")
	return nil
}
