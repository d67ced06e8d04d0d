package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/models"
	"github.com/yourusername/prop-scout/internal/oddsmath"
)

// Classification is the edge classifier's verdict for one soft quote against
// the sharp market.
type Classification struct {
	Type            models.EdgeType
	Score           float64
	Detail          string
	RecommendedSide *models.Side
}

// ClassifyEdge compares the chosen soft quote to the sharp reference and
// assigns an edge category and raw 0-100 score.
//
// Large gaps beyond the market's alternate-line tolerance are structurally
// different lines ("goblin"/"demon" variants carrying much worse payout odds),
// not pricing errors, and classify NONE. The tolerance comparison is
// strictly-greater: a gap exactly at the tolerance is still classified by
// magnitude.
func ClassifyEdge(soft models.Quote, sharp []models.Quote, engineCfg *config.EngineConfig, goldStandardBook string) Classification {
	if len(sharp) == 0 {
		return Classification{
			Type:   models.EdgeTypeNone,
			Score:  0,
			Detail: "no sharp lines available for comparison",
		}
	}

	reference := referenceSharpQuote(sharp, goldStandardBook)
	rule := engineCfg.RuleFor(soft.Market)
	diff := math.Abs(soft.Point - reference.Point)

	switch {
	case diff > rule.AltLineTolerance:
		return Classification{
			Type:  models.EdgeTypeNone,
			Score: 0,
			Detail: fmt.Sprintf("%.1f point gap exceeds %s tolerance of %.1f: likely alternate line, ignoring",
				diff, soft.Market, rule.AltLineTolerance),
		}
	case diff >= 1.0:
		return Classification{
			Type:  models.EdgeTypeDiscrepancy,
			Score: 90 + diff,
			Detail: fmt.Sprintf("soft line %.1f vs sharp line %.1f (%.1f point discrepancy)",
				soft.Point, reference.Point, diff),
		}
	case diff > 0:
		// Small gaps are a binary "edge exists" signal, not magnitude-scaled.
		return Classification{
			Type:  models.EdgeTypeDiscrepancy,
			Score: 80,
			Detail: fmt.Sprintf("soft line %.1f vs sharp line %.1f (sub-point discrepancy)",
				soft.Point, reference.Point),
		}
	default:
		// Identical lines can still be mispriced through vig asymmetry.
		absPrice := reference.Price
		if absPrice < 0 {
			absPrice = -absPrice
		}
		if absPrice >= engineCfg.JuicePriceThreshold {
			return Classification{
				Type:  models.EdgeTypeJuice,
				Score: 75 + float64(absPrice-130)/2,
				Detail: fmt.Sprintf("identical lines but sharp price %+d implies %.1f%%: heavy juice on one side",
					reference.Price, oddsmath.ImpliedPercent(reference.Price)),
			}
		}
		return Classification{
			Type:   models.EdgeTypeNone,
			Score:  0,
			Detail: "no significant edge",
		}
	}
}

// ResolveSide derives the recommended side from the sign of the gap between
// the sharp consensus and the soft line. A zero gap (the juice case) falls
// back to the direction the reference price leans: a heavily negative Over
// price means the market expects the over.
func ResolveSide(consensus, softLine float64, referencePrice int) models.Side {
	gap := consensus - softLine
	switch {
	case gap > 0:
		return models.SideOver
	case gap < 0:
		return models.SideUnder
	case referencePrice < 0:
		return models.SideOver
	default:
		return models.SideUnder
	}
}

// BoostByAgreement rewards edges that independent sharp books agree on,
// adding round(agreement/10) and capping the score at 100.
func BoostByAgreement(score, agreement float64) float64 {
	boosted := score + math.Round(agreement/10)
	if boosted > 100 {
		return 100
	}
	return boosted
}

// referenceSharpQuote prefers the designated gold-standard book, otherwise
// the first available sharp quote.
func referenceSharpQuote(sharp []models.Quote, goldStandardBook string) models.Quote {
	for _, q := range sharp {
		if q.BookKey == goldStandardBook {
			return q
		}
	}
	return sharp[0]
}
