package oddsmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{100, "2"},
		{150, "2.5"},
		{-200, "1.5"},
		{-110, "1.9090909090909090909090909090909091"},
	}
	for _, tt := range tests {
		got := AmericanToDecimal(tt.price)
		want, _ := decimal.NewFromString(tt.want)
		assert.True(t, got.Sub(want).Abs().LessThan(decimal.NewFromFloat(0.0001)),
			"price %d: got %s want %s", tt.price, got, want)
	}
	assert.True(t, AmericanToDecimal(0).IsZero())
}

func TestDecimalToAmerican(t *testing.T) {
	assert.Equal(t, 150, DecimalToAmerican(decimal.NewFromFloat(2.5)))
	assert.Equal(t, 100, DecimalToAmerican(decimal.NewFromInt(2)))
	assert.Equal(t, -200, DecimalToAmerican(decimal.NewFromFloat(1.5)))
	assert.Equal(t, 0, DecimalToAmerican(decimal.NewFromInt(1)))
}

func TestImpliedProbability(t *testing.T) {
	assert.InDelta(t, 0.545455, ImpliedProbability(-120), 1e-4)
	assert.InDelta(t, 0.4, ImpliedProbability(150), 1e-9)
	assert.InDelta(t, 0.5, ImpliedProbability(100), 1e-9)
	assert.InDelta(t, 0.5, ImpliedProbability(-100), 1e-9)
	assert.Zero(t, ImpliedProbability(0))
}

func TestImpliedPercent(t *testing.T) {
	assert.InDelta(t, 58.3, ImpliedPercent(-140), 1e-9)
	assert.InDelta(t, 40.0, ImpliedPercent(150), 1e-9)
}

func TestRoundTrip(t *testing.T) {
	for _, price := range []int{-250, -140, -110, 100, 120, 300} {
		dec := AmericanToDecimal(price)
		assert.Equal(t, price, DecimalToAmerican(dec), "price %d should round-trip", price)
	}
}
