package pipeline

import (
	"context"
	"testing"

	"recipe-importer/internal/core/platform"
	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAcquirer 測試用內容擷取
type stubAcquirer struct {
	content *common.AcquiredContent
	err     error
}

func (s *stubAcquirer) Acquire(ctx context.Context, url string, p platform.Platform) (*common.AcquiredContent, error) {
	return s.content, s.err
}

// stubExtractor 測試用 AI 擷取轉接器
type stubExtractor struct {
	recipe   *common.ParsedRecipe
	err      error
	received []string
}

func (s *stubExtractor) Extract(ctx context.Context, content string) (*common.ParsedRecipe, error) {
	s.received = append(s.received, content)
	if s.err != nil {
		return nil, s.err
	}
	clone := *s.recipe
	return &clone, nil
}

// stubBlog 測試用部落格擷取
type stubBlog struct {
	recipe *common.ParsedRecipe
	err    error
	calls  int
}

func (s *stubBlog) Extract(ctx context.Context, url string) (*common.ParsedRecipe, error) {
	s.calls++
	return s.recipe, s.err
}

func TestParseRecipeFromURLVideoPathAttachesThumbnail(t *testing.T) {
	acquirer := &stubAcquirer{content: &common.AcquiredContent{
		Text:         "5-minute Pasta",
		ThumbnailURL: "https://x/y.jpg",
	}}
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{Title: "Pasta"}}
	s := NewService(acquirer, extractor, &stubBlog{})

	rec, err := s.ParseRecipeFromURL(context.Background(), "https://www.youtube.com/watch?v=1")
	require.NoError(t, err)

	// AI 收到的就是 metadata 備援字串
	require.Len(t, extractor.received, 1)
	assert.Equal(t, "5-minute Pasta", extractor.received[0])

	// AI 沒給圖片時補上平台縮圖
	assert.Equal(t, "https://x/y.jpg", rec.ImageURL)
}

func TestParseRecipeFromURLKeepsAIImage(t *testing.T) {
	acquirer := &stubAcquirer{content: &common.AcquiredContent{
		Text:         "pasta transcript",
		ThumbnailURL: "https://x/thumb.jpg",
	}}
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{
		Title:    "Pasta",
		ImageURL: "https://ai/image.jpg",
	}}
	s := NewService(acquirer, extractor, &stubBlog{})

	rec, err := s.ParseRecipeFromURL(context.Background(), "https://tiktok.com/v/1")
	require.NoError(t, err)
	assert.Equal(t, "https://ai/image.jpg", rec.ImageURL)
}

func TestParseRecipeFromURLAcquisitionFailurePropagates(t *testing.T) {
	acquirer := &stubAcquirer{err: common.ErrNoContentExtracted.WithHint("請改用手動貼上")}
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{Title: "unused"}}
	s := NewService(acquirer, extractor, &stubBlog{})

	_, err := s.ParseRecipeFromURL(context.Background(), "https://instagram.com/reel/1")
	assert.ErrorIs(t, err, common.ErrNoContentExtracted)
	assert.Empty(t, extractor.received)
}

func TestParseRecipeFromURLBlogPathSkipsAI(t *testing.T) {
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{Title: "unused"}}
	blog := &stubBlog{recipe: &common.ParsedRecipe{Title: "Grandma's Stew"}}
	s := NewService(&stubAcquirer{}, extractor, blog)

	rec, err := s.ParseRecipeFromURL(context.Background(), "https://foodblog.example.com/stew")
	require.NoError(t, err)

	assert.Equal(t, "Grandma's Stew", rec.Title)
	assert.Equal(t, 1, blog.calls)
	// 部落格路徑不經過 AI 轉接器
	assert.Empty(t, extractor.received)
}

func TestParseRecipeFromURLEmpty(t *testing.T) {
	s := NewService(&stubAcquirer{}, &stubExtractor{recipe: &common.ParsedRecipe{}}, &stubBlog{})

	_, err := s.ParseRecipeFromURL(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestParseRecipeFromTextTooShort(t *testing.T) {
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{Title: "unused"}}
	s := NewService(&stubAcquirer{}, extractor, &stubBlog{})

	_, err := s.ParseRecipeFromText(context.Background(), "  too short  ")
	assert.ErrorIs(t, err, common.ErrInputTooShort)
	assert.Empty(t, extractor.received)
}

func TestParseRecipeFromText(t *testing.T) {
	extractor := &stubExtractor{recipe: &common.ParsedRecipe{Title: "Pasta"}}
	s := NewService(&stubAcquirer{}, extractor, &stubBlog{})

	text := "Cook pasta for 10 minutes, then add the garlic butter."
	rec, err := s.ParseRecipeFromText(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "Pasta", rec.Title)
	require.Len(t, extractor.received, 1)
	assert.Equal(t, text, extractor.received[0])
}
