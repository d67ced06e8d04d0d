package models

import (
	"fmt"
	"time"
)

// AnalyzedProp is the engine output for one player/market pairing.
// A full collection is produced per scan and replaces any prior set sharing
// the same IDs; records are never mutated after construction.
type AnalyzedProp struct {
	ID                string    `json:"id"`
	GameID            string    `json:"game_id"`
	PlayerKey         string    `json:"player_key"`
	PlayerName        string    `json:"player_name"`
	Market            string    `json:"market"`
	SoftQuote         Quote     `json:"soft_quote"`
	SharpQuotes       []Quote   `json:"sharp_quotes"`
	EdgeType          EdgeType  `json:"edge_type"`
	EdgeScore         float64   `json:"edge_score"`
	Detail            string    `json:"detail"`
	RecommendedSide   *Side     `json:"recommended_side,omitempty"`
	FairValue         *float64  `json:"fair_value,omitempty"`
	MaxAcceptableLine *float64  `json:"max_acceptable_line,omitempty"`
	MinAcceptableLine *float64  `json:"min_acceptable_line,omitempty"`
	PointEdge         float64   `json:"point_edge"`
	SharpAgreement    float64   `json:"sharp_agreement"`
	WinProbability    *float64  `json:"win_probability,omitempty"`
	Guidance          string    `json:"guidance"`
	Timestamp         time.Time `json:"timestamp"`
}

// PropID builds the composite identifier for a player/market record
func PropID(gameID, playerKey, market string) string {
	return fmt.Sprintf("%s|%s|%s", gameID, playerKey, market)
}

// HasEdge reports whether the record carries an actionable edge
func (p *AnalyzedProp) HasEdge() bool {
	return p.EdgeType != EdgeTypeNone
}

// HasConsensus reports whether a sharp consensus was computed
func (p *AnalyzedProp) HasConsensus() bool {
	return p.FairValue != nil
}
