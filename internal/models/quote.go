package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Side represents the side of an Over/Under prop market
type Side string

const (
	SideOver  Side = "OVER"
	SideUnder Side = "UNDER"
)

// EdgeType classifies the kind of mispricing detected for a prop
type EdgeType string

const (
	EdgeTypeDiscrepancy EdgeType = "DISCREPANCY"
	EdgeTypeJuice       EdgeType = "JUICE"
	EdgeTypeNone        EdgeType = "NONE"
)

// Quote represents a single quoted prop line from one bookmaker.
// Quotes are read-only inputs to the matching engine; they are validated
// once at the retrieval boundary and never mutated afterwards.
type Quote struct {
	BookName   string    `json:"book_name" validate:"required"`
	BookKey    string    `json:"book_key" validate:"required,lowercase"`
	Market     string    `json:"market" validate:"required"`
	PlayerName string    `json:"player_name" validate:"required"`
	Side       Side      `json:"side" validate:"required,oneof=OVER UNDER"`
	Point      float64   `json:"point"`
	Price      int       `json:"price" validate:"required"`
	Timestamp  time.Time `json:"timestamp" validate:"required"`
}

var quoteValidator = validator.New()

// NewQuote builds a validated Quote. Records coming off the wire go through
// here so malformed data is rejected before it reaches the engine.
func NewQuote(bookName, bookKey, market, playerName string, side Side, point float64, price int, ts time.Time) (Quote, error) {
	q := Quote{
		BookName:   bookName,
		BookKey:    bookKey,
		Market:     market,
		PlayerName: playerName,
		Side:       side,
		Point:      point,
		Price:      price,
		Timestamp:  ts,
	}
	if err := q.Validate(); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Validate checks the quote against its struct rules
func (q Quote) Validate() error {
	if err := quoteValidator.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}
	return nil
}

// IsOver reports whether the quote is on the OVER side
func (q Quote) IsOver() bool {
	return q.Side == SideOver
}
