package parse

import (
	"regexp"
	"strings"

	"recipe-importer/internal/pkg/common"
)

// 食材行解析用的單位詞彙表，約 30 個常見烹飪單位
const unitVocabulary = `cups?|tablespoons?|tbsps?|teaspoons?|tsps?|ounces?|oz|pounds?|lbs?|grams?|g|kilograms?|kgs?|milliliters?|ml|liters?|litres?|l|cloves?|slices?|cans?|pinch(?:es)?|dash(?:es)?|sticks?|pieces?|bunch(?:es)?|packages?|pkgs?|quarts?|qts?|pints?|pts?|gallons?|gals?|sprigs?|heads?|stalks?|handfuls?`

var (
	// 主要模式：數量（數字、小數、分數、空白）＋ 可選單位（可接 "of"）＋ 其餘為名稱
	ingredientPattern = regexp.MustCompile(`(?i)^\s*([\d][\d\s/.]*)?\s*(?:(` + unitVocabulary + `)\b\.?\s+(?:of\s+)?)?(.+?)\s*$`)

	// 寬鬆模式：只抓開頭的數字串當數量，其餘全部當名稱
	looseIngredientPattern = regexp.MustCompile(`^\s*([\d][\d\s/.]*)\s+(.+?)\s*$`)
)

// ParseIngredientLine 將一行自由格式的食材文字解析為結構化食材
// 啟發式解法，逐層放寬：主要模式 → 寬鬆模式 → 整行當作名稱
// 永遠回傳結果不會失敗，因為呼叫端（normalizer）承諾對格式問題絕不中斷
func ParseIngredientLine(line string) common.ParsedIngredient {
	if m := ingredientPattern.FindStringSubmatch(line); m != nil {
		return common.ParsedIngredient{
			Quantity: strings.TrimSpace(m[1]),
			Unit:     strings.ToLower(strings.TrimSpace(m[2])),
			Name:     strings.TrimSpace(m[3]),
		}
	}

	if m := looseIngredientPattern.FindStringSubmatch(line); m != nil {
		return common.ParsedIngredient{
			Quantity: strings.TrimSpace(m[1]),
			Name:     strings.TrimSpace(m[2]),
		}
	}

	// 完全比不出結構時整行視為名稱
	return common.ParsedIngredient{
		Name: strings.TrimSpace(line),
	}
}
