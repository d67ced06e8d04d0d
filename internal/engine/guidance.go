package engine

import (
	"fmt"

	"github.com/yourusername/prop-scout/internal/models"
)

// FormatGuidance renders a short human-readable instruction from the numeric
// edge fields. Three tiers per side: STRONG (more than a point of buffer
// before the threshold), ACCEPTABLE (up to a point), and a pass warning once
// the line has moved beyond the threshold. Display only; every claim here is
// re-derivable from the numeric fields.
func FormatGuidance(softLine, consensus float64, side models.Side, maxAcceptable, minAcceptable *float64) string {
	switch side {
	case models.SideOver:
		if maxAcceptable == nil {
			return ""
		}
		buffer := *maxAcceptable - softLine
		switch {
		case buffer > 1:
			return fmt.Sprintf("STRONG: take OVER %.1f, playable up to %.1f (fair value %.1f)",
				softLine, *maxAcceptable, consensus)
		case buffer >= 0:
			return fmt.Sprintf("ACCEPTABLE: take OVER %.1f, but pass above %.1f (fair value %.1f)",
				softLine, *maxAcceptable, consensus)
		default:
			return fmt.Sprintf("line %.1f has moved past the %.1f threshold, pass on the OVER",
				softLine, *maxAcceptable)
		}
	case models.SideUnder:
		if minAcceptable == nil {
			return ""
		}
		buffer := softLine - *minAcceptable
		switch {
		case buffer > 1:
			return fmt.Sprintf("STRONG: take UNDER %.1f, playable down to %.1f (fair value %.1f)",
				softLine, *minAcceptable, consensus)
		case buffer >= 0:
			return fmt.Sprintf("ACCEPTABLE: take UNDER %.1f, but pass below %.1f (fair value %.1f)",
				softLine, *minAcceptable, consensus)
		default:
			return fmt.Sprintf("line %.1f has moved past the %.1f threshold, pass on the UNDER",
				softLine, *minAcceptable)
		}
	}
	return ""
}
