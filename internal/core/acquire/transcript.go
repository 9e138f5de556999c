package acquire

import (
	"context"
	"fmt"
	"net/http"

	"recipe-importer/internal/core/platform"
	"recipe-importer/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// TranscriptProvider 影片逐字稿能力
// 逐字稿服務是選配的外部元件，這裡用能力介面加上「不可用」實作
// 在啟動時選定，呼叫端永遠只看到介面
type TranscriptProvider interface {
	Available() bool
	Fetch(ctx context.Context, url string, p platform.Platform) (string, error)
}

// NewTranscriptProvider 依設定選擇實作，未設定服務位址時回傳不可用實作
func NewTranscriptProvider(cfg *config.Config) TranscriptProvider {
	if cfg.Transcript.BaseURL == "" {
		return unavailableTranscript{}
	}
	return &httpTranscript{
		client: resty.New().
			SetBaseURL(cfg.Transcript.BaseURL).
			SetTimeout(cfg.Transcript.Timeout),
	}
}

// httpTranscript 透過外部逐字稿服務取得語音文字
type httpTranscript struct {
	client *resty.Client
}

func (t *httpTranscript) Available() bool {
	return true
}

func (t *httpTranscript) Fetch(ctx context.Context, url string, p platform.Platform) (string, error) {
	var result struct {
		Transcript string `json:"transcript"`
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("url", url).
		SetQueryParam("platform", string(p)).
		SetResult(&result).
		Get("/transcript")

	if err != nil {
		return "", fmt.Errorf("failed to fetch transcript: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("transcript service returned status %d", resp.StatusCode())
	}

	return result.Transcript, nil
}

// unavailableTranscript 逐字稿能力不可用時的空實作
type unavailableTranscript struct{}

func (unavailableTranscript) Available() bool {
	return false
}

func (unavailableTranscript) Fetch(ctx context.Context, url string, p platform.Platform) (string, error) {
	return "", fmt.Errorf("transcript service not configured")
}
