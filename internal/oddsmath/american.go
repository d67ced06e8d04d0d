// Package oddsmath provides conversions between American odds, decimal odds,
// and implied probability.
package oddsmath

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmericanToDecimal converts signed American odds to decimal odds.
// -120 -> 1.8333, +150 -> 2.5. Zero is not a valid American price and maps to 0.
func AmericanToDecimal(price int) decimal.Decimal {
	if price == 0 {
		return decimal.Zero
	}
	p := decimal.NewFromInt(int64(price))
	if price > 0 {
		// (price / 100) + 1
		return p.Div(hundred).Add(decimal.NewFromInt(1))
	}
	// (100 / |price|) + 1
	return hundred.Div(p.Abs()).Add(decimal.NewFromInt(1))
}

// DecimalToAmerican converts decimal odds to the nearest signed American price.
func DecimalToAmerican(dec decimal.Decimal) int {
	one := decimal.NewFromInt(1)
	if dec.LessThanOrEqual(one) {
		return 0
	}
	if dec.GreaterThanOrEqual(decimal.NewFromInt(2)) {
		// (decimal - 1) * 100
		return int(dec.Sub(one).Mul(hundred).Round(0).IntPart())
	}
	// -100 / (decimal - 1)
	return int(hundred.Neg().Div(dec.Sub(one)).Round(0).IntPart())
}

// ImpliedProbability returns the probability implied by a signed American
// price, as a fraction in (0, 1). -120 -> 0.5455, +150 -> 0.4.
func ImpliedProbability(price int) float64 {
	if price == 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(price))
	var prob decimal.Decimal
	if price > 0 {
		// 100 / (price + 100)
		prob = hundred.DivRound(p.Add(hundred), 6)
	} else {
		// |price| / (|price| + 100)
		abs := p.Abs()
		prob = abs.DivRound(abs.Add(hundred), 6)
	}
	f, _ := prob.Float64()
	return f
}

// ImpliedPercent returns the implied probability as a percentage rounded to
// one decimal place, convenient for detail strings.
func ImpliedPercent(price int) float64 {
	prob := decimal.NewFromFloat(ImpliedProbability(price))
	f, _ := prob.Mul(hundred).Round(1).Float64()
	return f
}
