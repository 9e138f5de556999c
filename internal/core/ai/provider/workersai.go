package provider

import (
	"context"
	"fmt"
	"net/http"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const workersAIBaseURL = "https://api.cloudflare.com/client/v4"

// WorkersAIClient Cloudflare Workers AI 客戶端（主要供應商）
type WorkersAIClient struct {
	config *config.Config
	client *resty.Client
}

// NewWorkersAIClient 創建 Workers AI 客戶端
func NewWorkersAIClient(cfg *config.Config) *WorkersAIClient {
	client := resty.New().
		SetBaseURL(workersAIBaseURL).
		SetTimeout(cfg.WorkersAI.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.WorkersAI.APIToken))

	return &WorkersAIClient{
		config: cfg,
		client: client,
	}
}

// Name 供應商名稱
func (c *WorkersAIClient) Name() string {
	return "workers_ai"
}

// Complete 送出 prompt 取得自由文字回應
func (c *WorkersAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	var result struct {
		Result struct {
			Response string `json:"response"`
		} `json:"result"`
		Success bool `json:"success"`
		Errors  []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("/accounts/%s/ai/run/%s", c.config.WorkersAI.AccountID, c.config.WorkersAI.Model))

	if err != nil {
		return "", fmt.Errorf("failed to send request to Workers AI: %w", err)
	}

	if resp.StatusCode() != http.StatusOK || !result.Success {
		// 供應商的錯誤內文只進日誌，不會原樣回給使用者
		common.LogError("Workers AI 回應錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.WorkersAI.Model),
			zap.String("response", resp.String()),
		)
		return "", fmt.Errorf("Workers AI returned status %d", resp.StatusCode())
	}

	if result.Result.Response == "" {
		return "", fmt.Errorf("empty response from Workers AI")
	}

	return result.Result.Response, nil
}
