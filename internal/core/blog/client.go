package blog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"recipe-importer/internal/core/parse"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// pageRecipe 擷取服務回傳的 JSON-LD 風格食譜
// 時長是 ISO-8601 或自然語言字串，份量是 "4 servings" 這類字串
type pageRecipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	PrepTime     string   `json:"prepTime"`
	CookTime     string   `json:"cookTime"`
	RecipeYield  string   `json:"recipeYield"`
	Ingredients  []string `json:"recipeIngredient"`
	Instructions []string `json:"recipeInstructions"`
}

var leadingNumberPattern = regexp.MustCompile(`\d+`)

// Client 部落格結構化擷取服務的客戶端
// 服務本身負責從頁面挖出 JSON-LD recipe 標記，這裡只負責把結果
// 整形成 ParsedRecipe，不經過 AI 轉接器
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建部落格擷取客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Blog.BaseURL).
		SetTimeout(cfg.Blog.Timeout).
		SetHeader("X-API-Key", cfg.Blog.APIKey)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Extract 擷取部落格頁面的食譜並整形
func (c *Client) Extract(ctx context.Context, url string) (*common.ParsedRecipe, error) {
	var page pageRecipe

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("url", url).
		SetResult(&page).
		Get("/api/extract")

	if err != nil {
		common.LogError("部落格擷取請求失敗",
			zap.Error(err),
			zap.String("url", url),
		)
		return nil, common.ErrNoContentExtracted.
			WithErr(err).
			WithHint("請確認連結可公開存取，或複製食譜文字後改用手動貼上匯入")
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("部落格擷取服務回應錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("url", url),
		)
		return nil, common.ErrNoContentExtracted.
			WithErr(fmt.Errorf("blog extraction returned status %d", resp.StatusCode())).
			WithHint("這個頁面找不到食譜標記，請複製食譜文字後改用手動貼上匯入")
	}

	return reshape(&page), nil
}

// reshape 把頁面食譜整形成輸出契約
// 來源已經是結構化資料，欄位逐一轉換即可，食材行仍經過字串解析器
func reshape(page *pageRecipe) *common.ParsedRecipe {
	rec := &common.ParsedRecipe{
		Title:        common.DefaultRecipeTitle,
		Ingredients:  []common.ParsedIngredient{},
		Instructions: []string{},
		ImageURL:     strings.TrimSpace(page.Image),
	}

	if title := strings.TrimSpace(page.Name); title != "" {
		rec.Title = title
	}
	if desc := strings.TrimSpace(page.Description); desc != "" {
		rec.Description = desc
	}

	for _, line := range page.Ingredients {
		ing := parse.ParseIngredientLine(line)
		if ing.Name == "" {
			continue
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}

	for _, step := range page.Instructions {
		step = strings.TrimSpace(step)
		if step != "" {
			rec.Instructions = append(rec.Instructions, step)
		}
	}

	if minutes, ok := parse.ParseDurationMinutes(page.PrepTime); ok {
		rec.PrepTime = common.IntPtr(minutes)
	}
	if minutes, ok := parse.ParseDurationMinutes(page.CookTime); ok {
		rec.CookTime = common.IntPtr(minutes)
	}

	// recipeYield 多半長成 "4" 或 "4 servings"
	if m := leadingNumberPattern.FindString(page.RecipeYield); m != "" {
		if servings, err := strconv.Atoi(m); err == nil && servings >= 1 {
			rec.Servings = common.IntPtr(servings)
		}
	}

	return rec
}
