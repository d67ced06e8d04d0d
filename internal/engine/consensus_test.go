package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prop-scout/internal/models"
)

func sharpQuotes(points ...float64) []models.Quote {
	quotes := make([]models.Quote, len(points))
	for i, p := range points {
		quotes[i] = overQuote("pinnacle", "Test Player", p, -110)
	}
	return quotes
}

func TestConsensusEmptyIsNil(t *testing.T) {
	assert.Nil(t, Consensus(nil))
	assert.Nil(t, Consensus([]models.Quote{}))
}

func TestConsensusMeanRoundedToOneDecimal(t *testing.T) {
	tests := []struct {
		points []float64
		want   float64
	}{
		{[]float64{26.5}, 26.5},
		{[]float64{26.0, 27.0}, 26.5},
		{[]float64{25.5, 26.5, 26.5}, 26.2}, // 26.1666 rounds to 26.2
		{[]float64{5.0, 8.0}, 6.5},
	}
	for _, tt := range tests {
		got := Consensus(sharpQuotes(tt.points...))
		require.NotNil(t, got)
		assert.InDelta(t, tt.want, *got, 1e-9, "points %v", tt.points)
	}
}

func TestSharpAgreement(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		want   float64
	}{
		{"no quotes means nothing to disagree with", nil, 100},
		{"single quote", []float64{26.5}, 100},
		{"identical points", []float64{26.5, 26.5, 26.5}, 100},
		{"spread of 1.5 halves confidence", []float64{5.0, 6.5}, 50},
		{"spread of 3 is total disagreement", []float64{5.0, 8.0}, 0},
		{"spread beyond 3 stays at zero", []float64{5.0, 12.0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SharpAgreement(sharpQuotes(tt.points...)), 1e-9)
		})
	}
}
