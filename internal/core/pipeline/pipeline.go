package pipeline

import (
	"context"
	"strings"

	"recipe-importer/internal/core/platform"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// 手動貼上的文字短於這個長度就不值得送出擷取
const minTextLength = 20

// ContentAcquirer 影片內容擷取
type ContentAcquirer interface {
	Acquire(ctx context.Context, url string, p platform.Platform) (*common.AcquiredContent, error)
}

// RecipeExtractor AI 擷取轉接器
type RecipeExtractor interface {
	Extract(ctx context.Context, content string) (*common.ParsedRecipe, error)
}

// PageExtractor 部落格頁面擷取
type PageExtractor interface {
	Extract(ctx context.Context, url string) (*common.ParsedRecipe, error)
}

// Service 食譜匯入管線的進入點
// 無狀態、單次呼叫內完成，不同請求可安全並行
type Service struct {
	acquirer  ContentAcquirer
	extractor RecipeExtractor
	blog      PageExtractor
}

// NewService 創建匯入管線
func NewService(acquirer ContentAcquirer, extractor RecipeExtractor, blog PageExtractor) *Service {
	return &Service{
		acquirer:  acquirer,
		extractor: extractor,
		blog:      blog,
	}
}

// ParseRecipeFromURL 從 URL 匯入食譜
// blog 路徑不經過 AI 轉接器：頁面擷取服務回傳的已經是結構化資料
func (s *Service) ParseRecipeFromURL(ctx context.Context, url string) (*common.ParsedRecipe, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, common.ErrInvalidRequest
	}

	p := platform.Classify(url)
	common.LogInfo("URL 已分類",
		zap.String("platform", string(p)),
	)

	switch p {
	case platform.Blog:
		return s.blog.Extract(ctx, url)

	case platform.TikTok, platform.YouTube, platform.Instagram:
		content, err := s.acquirer.Acquire(ctx, url, p)
		if err != nil {
			return nil, err
		}

		rec, err := s.extractor.Extract(ctx, content.Text)
		if err != nil {
			return nil, err
		}

		// 只有在 AI 沒給圖片時才補上平台縮圖
		if rec.ImageURL == "" && content.ThumbnailURL != "" {
			rec.ImageURL = content.ThumbnailURL
		}
		return rec, nil

	default:
		return nil, common.ErrUnsupportedSource
	}
}

// ParseRecipeFromText 從手動貼上的文字匯入食譜
func (s *Service) ParseRecipeFromText(ctx context.Context, text string) (*common.ParsedRecipe, error) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minTextLength {
		return nil, common.ErrInputTooShort.WithHint("請貼上更完整的食譜內容，至少包含食材或步驟")
	}

	return s.extractor.Extract(ctx, text)
}
