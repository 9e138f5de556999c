package acquire

import (
	"context"
	"fmt"
	"net/http"

	"recipe-importer/internal/core/platform"

	"github.com/go-resty/resty/v2"
)

// Metadata 平台公開的標題與縮圖，oEmbed 風格、免認證
type Metadata struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// MetadataFetcher 單一平台的 metadata 擷取器
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (*Metadata, error)
}

// NewMetadataFetchers 建立各影片平台的 metadata 擷取器
// dispatch 表涵蓋所有影片平台
func NewMetadataFetchers() map[platform.Platform]MetadataFetcher {
	client := resty.New()
	return map[platform.Platform]MetadataFetcher{
		platform.TikTok:    &oembedFetcher{client: client, endpoint: "https://www.tiktok.com/oembed"},
		platform.YouTube:   &oembedFetcher{client: client, endpoint: "https://www.youtube.com/oembed"},
		platform.Instagram: instagramFetcher{},
	}
}

// oembedFetcher 呼叫平台的 oEmbed 端點
type oembedFetcher struct {
	client   *resty.Client
	endpoint string
}

func (f *oembedFetcher) Fetch(ctx context.Context, url string) (*Metadata, error) {
	var meta Metadata

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("url", url).
		SetQueryParam("format", "json").
		SetResult(&meta).
		Get(f.endpoint)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch oembed metadata: %w", err)
	}
	// 非 2xx 視為軟失敗，由 orchestrator 決定下一步
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("oembed endpoint returned status %d", resp.StatusCode())
	}

	return &meta, nil
}

// instagramFetcher Instagram 不開放未認證的 oEmbed，固定失敗
type instagramFetcher struct{}

func (instagramFetcher) Fetch(ctx context.Context, url string) (*Metadata, error) {
	return nil, fmt.Errorf("instagram metadata is not accessible")
}
