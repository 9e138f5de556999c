package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			raw:  `{"title":"Tacos"}`,
			want: `{"title":"Tacos"}`,
			ok:   true,
		},
		{
			name: "commentary before and after",
			raw:  `Sure! Here's the recipe: {"title": "Tacos"} hope you like it`,
			want: `{"title": "Tacos"}`,
			ok:   true,
		},
		{
			name: "nested objects",
			raw:  `prefix {"a":{"b":{"c":1}},"d":2} suffix`,
			want: `{"a":{"b":{"c":1}},"d":2}`,
			ok:   true,
		},
		{
			name: "braces inside string values",
			raw:  `{"note":"use {very} hot \"oil\"","x":1}`,
			want: `{"note":"use {very} hot \"oil\"","x":1}`,
			ok:   true,
		},
		{
			name: "no object at all",
			raw:  "no json here",
			ok:   false,
		},
		{
			name: "unbalanced",
			raw:  `{"title": "Tacos"`,
			ok:   false,
		},
		{
			name: "empty",
			raw:  "",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	assert.Equal(t, `{"title": "x", "servings": 2}`, QuoteJSONKeys(`{title: "x", servings: 2}`))
}

func TestCustomErrorIs(t *testing.T) {
	err := ErrNoContentExtracted.WithHint("貼上")
	assert.ErrorIs(t, err, ErrNoContentExtracted)
	assert.NotErrorIs(t, err, ErrInputTooShort)
}
