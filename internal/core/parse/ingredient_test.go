package parse

import (
	"testing"

	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want common.ParsedIngredient
	}{
		{
			name: "fraction quantity with unit",
			line: "1 1/2 cups flour",
			want: common.ParsedIngredient{Quantity: "1 1/2", Unit: "cups", Name: "flour"},
		},
		{
			name: "no quantity falls back to full name",
			line: "salt to taste",
			want: common.ParsedIngredient{Quantity: "", Unit: "", Name: "salt to taste"},
		},
		{
			name: "unit with of",
			line: "2 cups of sugar",
			want: common.ParsedIngredient{Quantity: "2", Unit: "cups", Name: "sugar"},
		},
		{
			name: "quantity without known unit keeps word in name",
			line: "2 tortillas",
			want: common.ParsedIngredient{Quantity: "2", Unit: "", Name: "tortillas"},
		},
		{
			name: "decimal quantity",
			line: "0.5 kg chicken thighs",
			want: common.ParsedIngredient{Quantity: "0.5", Unit: "kg", Name: "chicken thighs"},
		},
		{
			name: "unit case insensitive",
			line: "3 Tbsp soy sauce",
			want: common.ParsedIngredient{Quantity: "3", Unit: "tbsp", Name: "soy sauce"},
		},
		{
			name: "clove unit",
			line: "2 cloves garlic, minced",
			want: common.ParsedIngredient{Quantity: "2", Unit: "cloves", Name: "garlic, minced"},
		},
		{
			name: "leading whitespace",
			line: "  1 can coconut milk ",
			want: common.ParsedIngredient{Quantity: "1", Unit: "can", Name: "coconut milk"},
		},
		{
			name: "empty line",
			line: "",
			want: common.ParsedIngredient{Quantity: "", Unit: "", Name: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredientLine(tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}
