package ai

import (
	"context"
	"time"

	"recipe-importer/internal/core/ai/cache"
	"recipe-importer/internal/core/ai/provider"
	"recipe-importer/internal/core/parse"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// extractionPrompt 固定的擷取指令模板，後面接上待解析的內容
// 要求模型無法判斷的欄位直接省略，不要猜測
const extractionPrompt = `請從以下內容中擷取食譜資訊，並以單一 JSON 物件回覆。
要求：
1. 只根據提供的內容擷取，不要補充內容中沒有出現的資訊
2. 無法判斷的欄位請直接省略該欄位，不要猜測也不要填 null
3. prep_time 與 cook_time 必須是整數分鐘
4. servings 必須是整數
5. 所有鍵都必須使用雙引號，除了 JSON 之外不要輸出其他文字

請以以下 JSON 格式返回：
{
"title": "食譜名稱",
"description": "簡短描述",
"ingredients": [
	{
	"name": "食材名稱",
	"quantity": "數量",
	"unit": "單位"
	}
],
"instructions": ["步驟一", "步驟二"],
"prep_time": 整數分鐘,
"cook_time": 整數分鐘,
"servings": 整數
}

內容：
`

// Extractor AI 擷取轉接器
// 把任意文字內容送給選定的生成式供應商，從回應裡挖出 JSON，
// 再交給 normalizer 整形成嚴格的 ParsedRecipe
type Extractor struct {
	provider provider.CompletionProvider
	cache    cache.Store
}

// NewExtractor 創建擷取轉接器
// provider 為 nil 表示未設定任何供應商，請求時回報 NoProviderConfigured
func NewExtractor(p provider.CompletionProvider, store cache.Store) *Extractor {
	return &Extractor{
		provider: p,
		cache:    store,
	}
}

// Extract 從自由文字內容擷取食譜
func (e *Extractor) Extract(ctx context.Context, content string) (*common.ParsedRecipe, error) {
	if e.provider == nil {
		return nil, common.ErrNoProviderConfigured
	}

	raw, err := e.complete(ctx, content)
	if err != nil {
		return nil, err
	}

	// 供應商可能在 JSON 前後夾帶說明文字，先取出第一個平衡的 {...}
	jsonText, ok := common.ExtractJSONObject(raw)
	if !ok {
		common.LogError("供應商回應中找不到 JSON 物件",
			zap.String("供應商", e.provider.Name()),
			zap.Int("response_length", len(raw)),
		)
		return nil, common.ErrInvalidProviderResponse
	}

	var parsed interface{}
	if err := common.ParseJSON(jsonText, &parsed); err != nil {
		common.LogError("供應商回應的 JSON 無法解析",
			zap.String("供應商", e.provider.Name()),
			zap.Error(err),
		)
		return nil, common.ErrInvalidProviderResponse.WithErr(err)
	}

	return parse.Normalize(parsed), nil
}

// complete 呼叫供應商，帶快取
func (e *Extractor) complete(ctx context.Context, content string) (string, error) {
	key := cache.Key(content)
	if e.cache != nil {
		if val, err := e.cache.Get(ctx, key); err == nil && val != "" {
			return val, nil
		}
	}

	start := time.Now()
	raw, err := e.provider.Complete(ctx, extractionPrompt+content)
	common.LogProviderCall(e.provider.Name(), time.Since(start), err)
	if err != nil {
		return "", common.ErrProviderRequestFailed.WithErr(err)
	}

	if e.cache != nil {
		_ = e.cache.Set(ctx, key, raw)
	}
	return raw, nil
}
