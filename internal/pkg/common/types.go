package common

// ParsedRecipe 匯入管線的輸出契約
// 缺少的欄位一律省略（omitempty），不輸出 null，方便下游直接判斷存在與否
type ParsedRecipe struct {
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Ingredients  []ParsedIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	PrepTime     *int               `json:"prep_time,omitempty"` // 分鐘
	CookTime     *int               `json:"cook_time,omitempty"` // 分鐘
	Servings     *int               `json:"servings,omitempty"`
	ImageURL     string             `json:"image_url,omitempty"`
}

// ParsedIngredient 單一食材
// quantity/unit 保留原始字串，數值轉換是下游的事
type ParsedIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// AcquiredContent 內容擷取結果，只在單次管線呼叫內存活，不做持久化
type AcquiredContent struct {
	Text         string
	ThumbnailURL string
}

// DefaultRecipeTitle 無法判斷標題時的預設標題
const DefaultRecipeTitle = "Imported Recipe"

// IntPtr 回傳整數指標，用於可省略的數值欄位
func IntPtr(v int) *int {
	return &v
}
