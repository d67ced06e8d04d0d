package scanner

import (
	"fmt"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/prop-scout/internal/metrics"
	"github.com/yourusername/prop-scout/internal/models"
)

// quoteCache keeps recently fetched quote lists so repeated scans inside the
// TTL window do not burn API credits.
type quoteCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

func newQuoteCache(ttl time.Duration) *quoteCache {
	return &quoteCache{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func cacheKey(sport, eventID string, markets []string) string {
	return fmt.Sprintf("%s:%s:%s", sport, eventID, strings.Join(markets, ","))
}

// Get returns the cached quote list for an event, or nil on a miss
func (qc *quoteCache) Get(sport, eventID string, markets []string) []models.Quote {
	if cached, found := qc.cache.Get(cacheKey(sport, eventID, markets)); found {
		if quotes, ok := cached.([]models.Quote); ok {
			metrics.CacheHitsTotal.Inc()
			return quotes
		}
	}
	metrics.CacheMissesTotal.Inc()
	return nil
}

// Set stores a quote list for an event
func (qc *quoteCache) Set(sport, eventID string, markets []string, quotes []models.Quote) {
	qc.cache.Set(cacheKey(sport, eventID, markets), quotes, qc.ttl)
}
