package engine

import (
	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/models"
)

// PlayerLines holds one player's quotes for a single market, partitioned into
// the soft (fixed-payout) and sharp (efficient-market) subsets. Both subsets
// carry OVER-side quotes only: a line value and its Over/Under price pair
// describe a single market point, so the UNDER side is derivable by symmetry
// and is not analyzed separately.
type PlayerLines struct {
	PlayerName string
	Soft       []models.Quote
	Sharp      []models.Quote
}

// GroupQuotes partitions a flat quote list for one market into per-player
// buckets keyed by normalized player name. The input is never mutated; the
// returned map and slices are freshly built. Players with zero soft quotes are
// dropped: nobody can wager on them through the target product.
func GroupQuotes(quotes []models.Quote, books *config.BooksConfig) map[string]*PlayerLines {
	groups := make(map[string]*PlayerLines)

	for _, q := range quotes {
		if !q.IsOver() {
			continue
		}
		key := NormalizePlayerName(q.PlayerName)
		if key == "" {
			continue
		}

		group, ok := groups[key]
		if !ok {
			group = &PlayerLines{PlayerName: q.PlayerName}
			groups[key] = group
		}

		if books.IsSoft(q.BookKey) {
			group.Soft = append(group.Soft, q)
		} else {
			group.Sharp = append(group.Sharp, q)
		}
	}

	for key, group := range groups {
		if len(group.Soft) == 0 {
			delete(groups, key)
		}
	}

	return groups
}

// ChooseSoftQuote selects the representative soft quote for a player,
// preferring the designated primary soft book.
func ChooseSoftQuote(soft []models.Quote, primaryBook string) models.Quote {
	for _, q := range soft {
		if q.BookKey == primaryBook {
			return q
		}
	}
	return soft[0]
}
