package acquire

import (
	"context"
	"strings"

	"recipe-importer/internal/core/platform"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// 逐字稿短於這個長度視為雜訊而不是內容
// metadata 標題本來就短，只要求非空
const minTranscriptLength = 50

// 各平台擷取全數失敗時給使用者的補救建議
var contentHints = map[platform.Platform]string{
	platform.TikTok:    "請開啟影片說明，複製文字後改用手動貼上匯入",
	platform.YouTube:   "請複製影片說明欄的內容後改用手動貼上匯入",
	platform.Instagram: "Instagram 不開放內容抓取，請複製貼文文字後改用手動貼上匯入",
}

// Orchestrator 內容擷取協調器
// 對已分類的影片 URL 依序嘗試：逐字稿（高保真）→ metadata（低保真）
// 單一策略失敗只記日誌不往外拋，全部失敗才回報 NoContentExtracted
// 每個策略每次呼叫最多嘗試一次，不做重試
type Orchestrator struct {
	transcript TranscriptProvider
	fetchers   map[platform.Platform]MetadataFetcher
}

// NewOrchestrator 以指定的策略元件建立協調器
func NewOrchestrator(transcript TranscriptProvider, fetchers map[platform.Platform]MetadataFetcher) *Orchestrator {
	return &Orchestrator{
		transcript: transcript,
		fetchers:   fetchers,
	}
}

// NewOrchestratorFromConfig 依設定建立協調器
func NewOrchestratorFromConfig(cfg *config.Config) *Orchestrator {
	return NewOrchestrator(NewTranscriptProvider(cfg), NewMetadataFetchers())
}

// Acquire 取得影片 URL 的可解析內容
// 兩個策略不並行：逐字稿嚴格優先，成功時就省下 metadata 呼叫
func (o *Orchestrator) Acquire(ctx context.Context, url string, p platform.Platform) (*common.AcquiredContent, error) {
	// 策略一：逐字稿
	if o.transcript.Available() {
		text, err := o.transcript.Fetch(ctx, url, p)
		if err != nil {
			common.LogWarn("逐字稿擷取失敗，改用 metadata 備援",
				zap.String("platform", string(p)),
				zap.Error(err),
			)
		} else if len(strings.TrimSpace(text)) >= minTranscriptLength {
			common.LogInfo("逐字稿擷取成功",
				zap.String("platform", string(p)),
				zap.Int("length", len(text)),
			)
			return &common.AcquiredContent{Text: strings.TrimSpace(text)}, nil
		} else {
			common.LogWarn("逐字稿過短，視為雜訊",
				zap.String("platform", string(p)),
				zap.Int("length", len(strings.TrimSpace(text))),
			)
		}
	}

	// 策略二：平台 metadata
	var content common.AcquiredContent
	if fetcher, ok := o.fetchers[p]; ok {
		meta, err := fetcher.Fetch(ctx, url)
		if err != nil {
			common.LogWarn("metadata 擷取失敗",
				zap.String("platform", string(p)),
				zap.Error(err),
			)
		} else {
			content.Text = strings.TrimSpace(meta.Title)
			content.ThumbnailURL = meta.ThumbnailURL
		}
	}

	if content.Text != "" {
		common.LogInfo("metadata 擷取成功",
			zap.String("platform", string(p)),
			zap.Int("length", len(content.Text)),
		)
		return &content, nil
	}

	return nil, common.ErrNoContentExtracted.WithHint(contentHints[p])
}
