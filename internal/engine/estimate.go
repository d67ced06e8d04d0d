package engine

import (
	"math"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/models"
)

// Estimate holds the acceptable-range boundary and win-probability heuristic
// for a classified edge. Only computed when a sharp consensus exists.
type Estimate struct {
	MaxAcceptableLine *float64
	MinAcceptableLine *float64
	// PointEdge is the buffer remaining between the soft line and the
	// threshold at which the residual edge becomes too thin to play.
	PointEdge float64
	// WinProbability is a linear heuristic clamped to [50, 75], never a
	// calibrated probability.
	WinProbability *float64
}

// EstimateRange computes the price boundary at which the edge vanishes and an
// estimated win probability. For a recommended OVER the soft line stays
// playable only up to consensus - minEdge; symmetric for UNDER.
func EstimateRange(softLine, consensus float64, side models.Side, rule config.MarketRule, minEdge float64) Estimate {
	est := Estimate{}

	if side == models.SideOver {
		maxLine := consensus - minEdge
		est.MaxAcceptableLine = &maxLine
		est.PointEdge = maxLine - softLine
	} else {
		minLine := consensus + minEdge
		est.MinAcceptableLine = &minLine
		est.PointEdge = softLine - minLine
	}

	prob := WinProbability(softLine, consensus, rule)
	est.WinProbability = &prob

	return est
}

// WinProbability estimates the chance the recommended side wins:
// clamp(50 + |gap| * marketMultiplier, 50, 75), rounded to one decimal.
// A linear heuristic capped to avoid overconfident output, not a calibrated
// probability.
func WinProbability(softLine, consensus float64, rule config.MarketRule) float64 {
	gap := math.Abs(consensus - softLine)
	prob := clamp(50+gap*rule.ProbMultiplier, 50, 75)
	return math.Round(prob*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
