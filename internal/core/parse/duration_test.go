package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{
			name: "iso hours and minutes",
			text: "PT1H30M",
			want: 90,
			ok:   true,
		},
		{
			name: "iso minutes only",
			text: "PT45M",
			want: 45,
			ok:   true,
		},
		{
			name: "iso hours only",
			text: "PT2H",
			want: 120,
			ok:   true,
		},
		{
			name: "natural hour plus minutes",
			text: "1 hour 15 minutes",
			want: 75,
			ok:   true,
		},
		{
			name: "natural minutes only",
			text: "20 mins",
			want: 20,
			ok:   true,
		},
		{
			name: "natural hours only",
			text: "2 hours",
			want: 120,
			ok:   true,
		},
		{
			name: "abbreviated hr",
			text: "1 hr 5 min",
			want: 65,
			ok:   true,
		},
		{
			name: "empty",
			text: "",
			ok:   false,
		},
		{
			name: "no duration at all",
			text: "until golden brown",
			ok:   false,
		},
		{
			name: "zero total",
			text: "0 minutes",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDurationMinutes(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
