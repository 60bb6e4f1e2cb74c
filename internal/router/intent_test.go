package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/estatebot/internal/router"
)

func TestParseIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   router.Intent
	}{
		{
			name:   "price and location",
			prompt: "I want a house under 250000 in Berlin",
			want:   router.Intent{PriceCeiling: 250000, Location: "Berlin"},
		},
		{
			name:   "no digits no location",
			prompt: "Tell me about financing options",
			want:   router.Intent{},
		},
		{
			name:   "price only",
			prompt: "Anything below 100000?",
			want:   router.Intent{PriceCeiling: 100000},
		},
		{
			name:   "location only",
			prompt: "Show me flats in Hamburg Altona ",
			want:   router.Intent{Location: "Hamburg Altona"},
		},
		{
			name:   "first digit run wins",
			prompt: "3 rooms for 400000 in Munich",
			want:   router.Intent{PriceCeiling: 3, Location: "Munich"},
		},
		{
			name:   "first in wins even inside a word",
			prompt: "within 200000 in Cologne",
			want:   router.Intent{PriceCeiling: 200000, Location: "200000 in Cologne"},
		},
		{
			name:   "case sensitive token",
			prompt: "In Hamburg, max 300000",
			want:   router.Intent{PriceCeiling: 300000},
		},
		{
			name:   "nothing after token",
			prompt: "price 5000 in    ",
			want:   router.Intent{PriceCeiling: 5000},
		},
		{
			name:   "location stops at end of line",
			prompt: "under 90000 in Leipzig\nthanks",
			want:   router.Intent{PriceCeiling: 90000, Location: "Leipzig"},
		},
		{
			name:   "zero price is absent",
			prompt: "0 in Dresden",
			want:   router.Intent{Location: "Dresden"},
		},
		{
			name:   "overflowing price is absent",
			prompt: "99999999999999999999999 in Bonn",
			want:   router.Intent{Location: "Bonn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, router.ParseIntent(tt.prompt))
		})
	}
}

func TestIntent_Structured(t *testing.T) {
	t.Parallel()

	assert.True(t, router.Intent{PriceCeiling: 1, Location: "x"}.Structured())
	assert.False(t, router.Intent{PriceCeiling: 1}.Structured())
	assert.False(t, router.Intent{Location: "x"}.Structured())
	assert.False(t, router.Intent{}.Structured())
}
