package parse

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipe-importer/internal/pkg/common"
)

// 單一字串的步驟可能長成 "1. 打蛋 2. 下鍋"，用步驟編號或換行切開
var instructionSplitPattern = regexp.MustCompile(`(?m)(?:^|\s)\d+\s*[.)]\s+|\n+`)

// Normalize 將生成模型回傳的任意 JSON 值整形為嚴格的 ParsedRecipe
// 上游是非確定性的生成器，沒辦法保證精確 schema，所以這裡逐欄位
// 盡力修復或丟棄壞資料，對格式問題絕不回傳錯誤：
// 單一欄位壞掉不能毀掉整次擷取
func Normalize(raw interface{}) *common.ParsedRecipe {
	rec := &common.ParsedRecipe{
		Title:        common.DefaultRecipeTitle,
		Ingredients:  []common.ParsedIngredient{},
		Instructions: []string{},
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return rec
	}

	if title := strings.TrimSpace(coerceString(obj["title"])); title != "" {
		rec.Title = title
	}

	if desc, ok := obj["description"].(string); ok && strings.TrimSpace(desc) != "" {
		rec.Description = strings.TrimSpace(desc)
	}

	rec.Ingredients = normalizeIngredients(obj["ingredients"])
	rec.Instructions = normalizeInstructions(obj["instructions"])

	if v, ok := coerceMinutes(obj["prep_time"]); ok {
		rec.PrepTime = common.IntPtr(v)
	}
	if v, ok := coerceMinutes(obj["cook_time"]); ok {
		rec.CookTime = common.IntPtr(v)
	}
	if v, ok := coerceMinutes(obj["servings"]); ok && v >= 1 {
		rec.Servings = common.IntPtr(v)
	}

	if img, ok := obj["image_url"].(string); ok {
		rec.ImageURL = strings.TrimSpace(img)
	} else if img, ok := obj["image"].(string); ok {
		rec.ImageURL = strings.TrimSpace(img)
	}

	return rec
}

// normalizeIngredients 接受字串陣列或物件陣列，其餘形狀整個略過
// 整形後名稱為空的食材一律丟棄
func normalizeIngredients(raw interface{}) []common.ParsedIngredient {
	result := []common.ParsedIngredient{}

	items, ok := raw.([]interface{})
	if !ok {
		return result
	}

	for _, item := range items {
		var ing common.ParsedIngredient
		switch v := item.(type) {
		case string:
			ing = ParseIngredientLine(v)
		case map[string]interface{}:
			// 模型對欄位名稱不穩定，常見別名一併接受
			ing = common.ParsedIngredient{
				Name:     coerceString(firstPresent(v, "name", "ingredient")),
				Quantity: coerceString(firstPresent(v, "quantity", "amount")),
				Unit:     coerceString(v["unit"]),
			}
		default:
			continue
		}

		ing.Name = strings.TrimSpace(ing.Name)
		ing.Quantity = strings.TrimSpace(ing.Quantity)
		ing.Unit = strings.TrimSpace(ing.Unit)
		if ing.Name == "" {
			continue
		}
		result = append(result, ing)
	}

	return result
}

// normalizeInstructions 接受字串陣列、步驟物件陣列或單一字串
func normalizeInstructions(raw interface{}) []string {
	result := []string{}

	appendStep := func(step string) {
		step = strings.TrimSpace(step)
		if step != "" {
			result = append(result, step)
		}
	}

	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			switch step := item.(type) {
			case string:
				appendStep(step)
			case map[string]interface{}:
				appendStep(coerceString(firstPresent(step, "text", "step", "description")))
			}
		}
	case string:
		for _, part := range instructionSplitPattern.Split(v, -1) {
			appendStep(part)
		}
	}

	return result
}

// firstPresent 依序取出第一個存在的鍵值
func firstPresent(obj map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// coerceString 將字串或數字值轉成字串，其餘型別視為空
func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceMinutes 只接受數值輸入，四捨五入為整數分鐘，非數值一律省略
func coerceMinutes(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return roundNonNegative(f)
	case float64:
		return roundNonNegative(n)
	case int:
		if n < 0 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func roundNonNegative(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int(math.Round(f)), true
}
