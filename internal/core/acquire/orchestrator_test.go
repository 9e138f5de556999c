package acquire

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"recipe-importer/internal/core/platform"
	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTranscript 測試用逐字稿供應者
type stubTranscript struct {
	available bool
	text      string
	err       error
	calls     int
}

func (s *stubTranscript) Available() bool { return s.available }

func (s *stubTranscript) Fetch(ctx context.Context, url string, p platform.Platform) (string, error) {
	s.calls++
	return s.text, s.err
}

// stubMetadata 測試用 metadata 擷取器
type stubMetadata struct {
	meta  *Metadata
	err   error
	calls int
}

func (s *stubMetadata) Fetch(ctx context.Context, url string) (*Metadata, error) {
	s.calls++
	return s.meta, s.err
}

func TestAcquireTranscriptPreferred(t *testing.T) {
	transcript := &stubTranscript{
		available: true,
		text:      strings.Repeat("chop the onions and fry them gently ", 3),
	}
	metadata := &stubMetadata{meta: &Metadata{Title: "unused"}}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.TikTok: metadata,
	})

	content, err := o.Acquire(context.Background(), "https://tiktok.com/v/1", platform.TikTok)
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(transcript.text), content.Text)
	// 逐字稿成功時不浪費 metadata 呼叫
	assert.Equal(t, 0, metadata.calls)
}

func TestAcquireMetadataFallbackWhenTranscriptFails(t *testing.T) {
	transcript := &stubTranscript{available: true, err: fmt.Errorf("no captions")}
	metadata := &stubMetadata{meta: &Metadata{
		Title:        "5-minute Pasta",
		ThumbnailURL: "https://x/y.jpg",
	}}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.YouTube: metadata,
	})

	content, err := o.Acquire(context.Background(), "https://youtube.com/watch?v=1", platform.YouTube)
	require.NoError(t, err)

	// 後續的 AI 轉接器必須收到的是 metadata 字串本身，不是空字串
	assert.Equal(t, "5-minute Pasta", content.Text)
	assert.Equal(t, "https://x/y.jpg", content.ThumbnailURL)
	assert.Equal(t, 1, transcript.calls)
	assert.Equal(t, 1, metadata.calls)
}

func TestAcquireShortTranscriptTreatedAsNoise(t *testing.T) {
	transcript := &stubTranscript{available: true, text: "hey guys"}
	metadata := &stubMetadata{meta: &Metadata{Title: "Creamy garlic pasta recipe"}}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.YouTube: metadata,
	})

	content, err := o.Acquire(context.Background(), "https://youtu.be/1", platform.YouTube)
	require.NoError(t, err)

	assert.Equal(t, "Creamy garlic pasta recipe", content.Text)
	assert.Equal(t, 1, metadata.calls)
}

func TestAcquireTranscriptUnavailableSkipsStraightToMetadata(t *testing.T) {
	transcript := &stubTranscript{available: false}
	metadata := &stubMetadata{meta: &Metadata{Title: "Creamy garlic pasta recipe"}}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.TikTok: metadata,
	})

	content, err := o.Acquire(context.Background(), "https://tiktok.com/v/1", platform.TikTok)
	require.NoError(t, err)

	assert.Equal(t, "Creamy garlic pasta recipe", content.Text)
	assert.Equal(t, 0, transcript.calls)
}

func TestAcquireAllStrategiesFail(t *testing.T) {
	transcript := &stubTranscript{available: true, err: fmt.Errorf("blocked")}
	metadata := &stubMetadata{err: fmt.Errorf("instagram metadata is not accessible")}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.Instagram: metadata,
	})

	_, err := o.Acquire(context.Background(), "https://instagram.com/reel/1", platform.Instagram)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoContentExtracted)

	// 錯誤要帶平台專屬的補救建議（手動貼上）
	var ce *common.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Hint, "貼上")
}

func TestAcquireEmptyMetadataTitleFails(t *testing.T) {
	transcript := &stubTranscript{available: false}
	metadata := &stubMetadata{meta: &Metadata{Title: "   "}}
	o := NewOrchestrator(transcript, map[platform.Platform]MetadataFetcher{
		platform.YouTube: metadata,
	})

	_, err := o.Acquire(context.Background(), "https://youtu.be/1", platform.YouTube)
	assert.ErrorIs(t, err, common.ErrNoContentExtracted)
}

func TestInstagramFetcherAlwaysFails(t *testing.T) {
	fetchers := NewMetadataFetchers()
	_, err := fetchers[platform.Instagram].Fetch(context.Background(), "https://instagram.com/reel/1")
	assert.Error(t, err)
}
