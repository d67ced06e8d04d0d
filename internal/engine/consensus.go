package engine

import (
	"math"

	"github.com/yourusername/prop-scout/internal/models"
)

// agreementSpreadCeiling is the sharp max-minus-min point spread treated as
// total disagreement (confidence 0).
const agreementSpreadCeiling = 3.0

// Consensus reduces a sharp-side quote list to a single representative line:
// the arithmetic mean of quoted points rounded to one decimal place. Returns
// nil when no sharp quotes exist.
func Consensus(sharp []models.Quote) *float64 {
	if len(sharp) == 0 {
		return nil
	}

	sum := 0.0
	for _, q := range sharp {
		sum += q.Point
	}
	mean := math.Round(sum/float64(len(sharp))*10) / 10
	return &mean
}

// SharpAgreement scores how tightly independent sharp books cluster, from 100
// (identical points, or nothing to disagree with) down to 0 as the point
// spread grows to agreementSpreadCeiling. A robustness heuristic, not a
// statistical model.
func SharpAgreement(sharp []models.Quote) float64 {
	if len(sharp) <= 1 {
		return 100
	}

	minPoint, maxPoint := sharp[0].Point, sharp[0].Point
	for _, q := range sharp[1:] {
		if q.Point < minPoint {
			minPoint = q.Point
		}
		if q.Point > maxPoint {
			maxPoint = q.Point
		}
	}

	spread := maxPoint - minPoint
	if spread >= agreementSpreadCeiling {
		return 0
	}
	return 100 * (1 - spread/agreementSpreadCeiling)
}
