package blog

import (
	"testing"

	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshapeFullPage(t *testing.T) {
	page := &pageRecipe{
		Name:        "Slow Cooker Chili",
		Description: "A cozy weeknight chili.",
		Image:       "https://blog/chili.jpg",
		PrepTime:    "PT15M",
		CookTime:    "PT1H30M",
		RecipeYield: "6 servings",
		Ingredients: []string{
			"1 1/2 cups kidney beans",
			"salt to taste",
			"   ",
		},
		Instructions: []string{
			"Brown the beef.",
			"  ",
			"Simmer everything.",
		},
	}

	rec := reshape(page)

	assert.Equal(t, "Slow Cooker Chili", rec.Title)
	assert.Equal(t, "A cozy weeknight chili.", rec.Description)
	assert.Equal(t, "https://blog/chili.jpg", rec.ImageURL)

	// 食材行經過字串解析器
	require.Len(t, rec.Ingredients, 2)
	assert.Equal(t, common.ParsedIngredient{Quantity: "1 1/2", Unit: "cups", Name: "kidney beans"}, rec.Ingredients[0])
	assert.Equal(t, common.ParsedIngredient{Name: "salt to taste"}, rec.Ingredients[1])

	assert.Equal(t, []string{"Brown the beef.", "Simmer everything."}, rec.Instructions)

	// ISO-8601 時長轉為分鐘
	require.NotNil(t, rec.PrepTime)
	assert.Equal(t, 15, *rec.PrepTime)
	require.NotNil(t, rec.CookTime)
	assert.Equal(t, 90, *rec.CookTime)

	require.NotNil(t, rec.Servings)
	assert.Equal(t, 6, *rec.Servings)
}

func TestReshapeSparsePage(t *testing.T) {
	rec := reshape(&pageRecipe{})

	assert.Equal(t, common.DefaultRecipeTitle, rec.Title)
	assert.Empty(t, rec.Ingredients)
	assert.Empty(t, rec.Instructions)
	assert.Nil(t, rec.PrepTime)
	assert.Nil(t, rec.CookTime)
	assert.Nil(t, rec.Servings)
	assert.Empty(t, rec.ImageURL)
}

func TestReshapeNaturalLanguageDurations(t *testing.T) {
	rec := reshape(&pageRecipe{
		Name:        "Roast",
		PrepTime:    "10 minutes",
		CookTime:    "1 hour 15 minutes",
		RecipeYield: "4",
	})

	require.NotNil(t, rec.PrepTime)
	assert.Equal(t, 10, *rec.PrepTime)
	require.NotNil(t, rec.CookTime)
	assert.Equal(t, 75, *rec.CookTime)
	require.NotNil(t, rec.Servings)
	assert.Equal(t, 4, *rec.Servings)
}
