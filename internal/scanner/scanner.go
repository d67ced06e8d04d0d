// Package scanner orchestrates scan runs: it fans quote retrieval out across
// games with a fixed concurrency width and an inter-batch delay, isolates
// per-game failures, and feeds each game's consistent quote snapshot to the
// matching engine.
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/engine"
	"github.com/yourusername/prop-scout/internal/logger"
	"github.com/yourusername/prop-scout/internal/metrics"
	"github.com/yourusername/prop-scout/internal/models"
	"github.com/yourusername/prop-scout/internal/oddsapi"
)

// QuoteFetcher is the retrieval collaborator contract the scanner depends on
type QuoteFetcher interface {
	ListEvents(ctx context.Context, sport string) ([]oddsapi.Event, error)
	FetchEventQuotes(ctx context.Context, sport, eventID string, markets []string) ([]models.Quote, int, error)
}

// Scanner coordinates quote retrieval and engine invocation for scan runs
type Scanner struct {
	fetcher QuoteFetcher
	engine  *engine.Engine
	cache   *quoteCache
	cfg     config.ScannerConfig
	scanLog *logger.ScanLogger
}

// New creates a scanner
func New(fetcher QuoteFetcher, eng *engine.Engine, cfg config.ScannerConfig, baseLogger *logrus.Logger) *Scanner {
	return &Scanner{
		fetcher: fetcher,
		engine:  eng,
		cache:   newQuoteCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		cfg:     cfg,
		scanLog: logger.NewScanLogger(baseLogger),
	}
}

// Scan runs one full scan: list upcoming games, fetch quotes per game in
// fixed-width batches with an inter-batch delay, analyze each game's
// snapshot, and return the combined result ranked by edge score. A game whose
// fetch fails contributes zero quotes and never aborts its siblings.
func (s *Scanner) Scan(ctx context.Context) ([]models.AnalyzedProp, error) {
	scanID := uuid.New().String()
	started := time.Now()
	metrics.ScansTotal.Inc()

	events, err := s.fetcher.ListEvents(ctx, s.cfg.Sport)
	if err != nil {
		return nil, err
	}
	s.scanLog.LogScanStarted(scanID, s.cfg.Sport, len(events), len(s.cfg.Markets))

	quotesByGame := s.fetchAll(ctx, scanID, events)

	var props []models.AnalyzedProp
	quotesIngested := 0
	for gameID, quotes := range quotesByGame {
		quotesIngested += len(quotes)
		props = append(props, s.engine.Analyze(gameID, quotes)...)
	}
	engine.Rank(props)

	edges := 0
	for i := range props {
		if props[i].HasEdge() {
			edges++
			metrics.RecordEdgeFound(string(props[i].EdgeType))
			s.scanLog.LogEdgeFound(scanID, props[i].ID, props[i].PlayerName, props[i].Market,
				string(props[i].EdgeType), props[i].EdgeScore, props[i].SoftQuote.Point, props[i].FairValue)
		}
	}

	elapsed := time.Since(started)
	metrics.ScanDuration.Observe(elapsed.Seconds())
	metrics.LastScanProps.Set(float64(len(props)))
	metrics.LastScanEdges.Set(float64(edges))
	s.scanLog.LogScanCompleted(scanID, quotesIngested, len(props), edges, float64(elapsed.Milliseconds()))

	return props, nil
}

// fetchAll retrieves quotes for every game. Games are processed in batches of
// the configured width with a delay between batches to respect the upstream
// rate limit. Failure isolation is per game: an erroring fetch surfaces as an
// empty quote list.
func (s *Scanner) fetchAll(ctx context.Context, scanID string, events []oddsapi.Event) map[string][]models.Quote {
	results := make(map[string][]models.Quote, len(events))
	var mu sync.Mutex

	width := s.cfg.Concurrency
	if width <= 0 {
		width = 1
	}
	delay := time.Duration(s.cfg.BatchDelayMS) * time.Millisecond

	for start := 0; start < len(events); start += width {
		end := start + width
		if end > len(events) {
			end = len(events)
		}

		var wg sync.WaitGroup
		for _, event := range events[start:end] {
			wg.Add(1)
			go func(ev oddsapi.Event) {
				defer wg.Done()
				quotes := s.fetchGame(ctx, scanID, ev)
				mu.Lock()
				results[ev.ID] = quotes
				mu.Unlock()
			}(event)
		}
		wg.Wait()

		if end < len(events) && delay > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(delay):
			}
		}
	}

	return results
}

// fetchGame retrieves one game's quotes, consulting the cache first
func (s *Scanner) fetchGame(ctx context.Context, scanID string, event oddsapi.Event) []models.Quote {
	if cached := s.cache.Get(s.cfg.Sport, event.ID, s.cfg.Markets); cached != nil {
		return cached
	}

	metrics.GamesFetchedTotal.Inc()
	fetchStart := time.Now()
	quotes, rejected, err := s.fetcher.FetchEventQuotes(ctx, s.cfg.Sport, event.ID, s.cfg.Markets)
	metrics.GameFetchLatency.Observe(time.Since(fetchStart).Seconds())
	metrics.QuotesRejectedTotal.Add(float64(rejected))

	if err != nil {
		metrics.GameFetchFailuresTotal.Inc()
		s.scanLog.LogGameFailed(scanID, event.ID, err)
		return nil
	}

	metrics.QuotesIngestedTotal.Add(float64(len(quotes)))
	s.cache.Set(s.cfg.Sport, event.ID, s.cfg.Markets, quotes)
	return quotes
}
