package oddsapi

import (
	"strings"

	"github.com/yourusername/prop-scout/internal/models"
)

// parseQuotes converts a wire response into validated Quote values. Outcomes
// that are not genuine Over/Under sides, or that fail constructor validation
// (missing player, missing point, zero price), never reach the engine.
func parseQuotes(resp *eventOddsResponse) ([]models.Quote, int) {
	var quotes []models.Quote
	rejected := 0

	for _, book := range resp.Bookmakers {
		for _, mkt := range book.Markets {
			for _, out := range mkt.Outcomes {
				side, ok := parseSide(out.Name)
				if !ok {
					rejected++
					continue
				}
				if out.Point == nil {
					rejected++
					continue
				}

				q, err := models.NewQuote(
					book.Title,
					book.Key,
					mkt.Key,
					out.Description,
					side,
					*out.Point,
					out.Price,
					mkt.LastUpdate,
				)
				if err != nil {
					rejected++
					continue
				}
				quotes = append(quotes, q)
			}
		}
	}

	return quotes, rejected
}

// parseSide maps an outcome label to a market side. Alternate outcome labels
// ("Yes", team names, goblin/demon variants) are not O/U sides and are
// filtered here.
func parseSide(name string) (models.Side, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "over":
		return models.SideOver, true
	case "under":
		return models.SideUnder, true
	default:
		return "", false
	}
}
