// Package engine implements the line-matching and edge-scoring pipeline:
// quotes are grouped per player, reduced to a sharp consensus, classified for
// edge type and magnitude, bounded to an acceptable price range, and ranked.
// The engine is a pure, synchronous, single-pass computation: no internal
// concurrency, no shared mutable state, safe to invoke concurrently for
// independent input batches.
package engine

import (
	"sort"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/models"
)

// Engine matches soft quotes against the sharp market for one batch of quotes
// at a time.
type Engine struct {
	books  *config.BooksConfig
	engine *config.EngineConfig
}

// New creates a matching engine with explicit threshold configuration so
// market tolerances and probability multipliers are swappable in isolation.
func New(books *config.BooksConfig, engineCfg *config.EngineConfig) *Engine {
	return &Engine{
		books:  books,
		engine: engineCfg,
	}
}

// Analyze runs the full matching pipeline over a consistent snapshot of
// quotes for one game and returns one AnalyzedProp per player/market, ordered
// by descending edge score. Partial data degrades, it never errors: players
// with no soft quote are dropped, players with no sharp quotes come back with
// a cleared edge and a nil fair value.
func (e *Engine) Analyze(gameID string, quotes []models.Quote) []models.AnalyzedProp {
	byMarket := make(map[string][]models.Quote)
	for _, q := range quotes {
		byMarket[q.Market] = append(byMarket[q.Market], q)
	}

	var props []models.AnalyzedProp
	for market, marketQuotes := range byMarket {
		groups := GroupQuotes(marketQuotes, e.books)
		for playerKey, lines := range groups {
			props = append(props, e.analyzePlayer(gameID, playerKey, market, lines))
		}
	}

	Rank(props)
	return props
}

// analyzePlayer produces the per-player record for one market
func (e *Engine) analyzePlayer(gameID, playerKey, market string, lines *PlayerLines) models.AnalyzedProp {
	soft := ChooseSoftQuote(lines.Soft, e.books.PrimarySoftBook)

	prop := models.AnalyzedProp{
		ID:             models.PropID(gameID, playerKey, market),
		GameID:         gameID,
		PlayerKey:      playerKey,
		PlayerName:     lines.PlayerName,
		Market:         market,
		SoftQuote:      soft,
		SharpQuotes:    lines.Sharp,
		EdgeType:       models.EdgeTypeNone,
		SharpAgreement: SharpAgreement(lines.Sharp),
		Timestamp:      soft.Timestamp,
	}

	consensus := Consensus(lines.Sharp)
	if consensus == nil {
		prop.Detail = "no sharp lines available for comparison"
		return prop
	}
	prop.FairValue = consensus

	rule := e.engine.RuleFor(market)
	winProb := WinProbability(soft.Point, *consensus, rule)
	prop.WinProbability = &winProb

	verdict := ClassifyEdge(soft, lines.Sharp, e.engine, e.books.GoldStandardBook)
	prop.EdgeType = verdict.Type
	prop.EdgeScore = verdict.Score
	prop.Detail = verdict.Detail

	if verdict.Type == models.EdgeTypeNone {
		return prop
	}

	reference := referenceSharpQuote(lines.Sharp, e.books.GoldStandardBook)
	side := ResolveSide(*consensus, soft.Point, reference.Price)
	prop.RecommendedSide = &side
	prop.EdgeScore = BoostByAgreement(verdict.Score, prop.SharpAgreement)

	est := EstimateRange(soft.Point, *consensus, side, rule, e.engine.MinEdgeThreshold)
	prop.MaxAcceptableLine = est.MaxAcceptableLine
	prop.MinAcceptableLine = est.MinAcceptableLine
	prop.PointEdge = est.PointEdge
	prop.Guidance = FormatGuidance(soft.Point, *consensus, side, est.MaxAcceptableLine, est.MinAcceptableLine)

	return prop
}

// Rank orders records by descending edge score in place. Player key and
// market break ties so output is deterministic regardless of map iteration
// order.
func Rank(props []models.AnalyzedProp) {
	sort.SliceStable(props, func(i, j int) bool {
		if props[i].EdgeScore != props[j].EdgeScore {
			return props[i].EdgeScore > props[j].EdgeScore
		}
		if props[i].PlayerKey != props[j].PlayerKey {
			return props[i].PlayerKey < props[j].PlayerKey
		}
		return props[i].Market < props[j].Market
	})
}
