// Package oddsapi is the quote-retrieval collaborator. It fetches prop lines
// from a the-odds-api style REST endpoint and parses them into validated
// Quote values. Transport and parse failures are contained here; the matching
// engine only ever sees well-formed quotes.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/models"
)

// Client is a rate-limited, retrying HTTP client for the odds API
type Client struct {
	http              *retryablehttp.Client
	limiter           *rate.Limiter
	baseURL           string
	apiKey            string
	regions           string
	circuitBreakerMax int
	logger            *logrus.Logger

	// mu guards the circuit breaker state; the scanner shares one client
	// across its per-game goroutines.
	mu                sync.Mutex
	consecutiveErrors int
	isOpen            bool
	lastError         error
}

// NewClient creates a client from the odds API configuration
func NewClient(cfg config.OddsAPIConfig, logger *logrus.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.CheckRetry = retryPolicy
	retryClient.Logger = nil

	return &Client{
		http:              retryClient,
		limiter:           rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), 1),
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:            cfg.APIKey,
		regions:           strings.Join(cfg.Regions, ","),
		circuitBreakerMax: 5,
		logger:            logger,
	}
}

// ListEvents fetches upcoming events for a sport
func (c *Client) ListEvents(ctx context.Context, sport string) ([]Event, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/events", c.baseURL, url.PathEscape(sport))
	params := url.Values{"apiKey": {c.apiKey}}

	body, err := c.get(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", sport, err)
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}
	return events, nil
}

// FetchEventQuotes fetches prop quotes for one event across the given markets
// and returns only validated Over/Under quotes. The rejected count reports
// malformed or non-O/U records filtered at this boundary.
func (c *Client) FetchEventQuotes(ctx context.Context, sport, eventID string, markets []string) ([]models.Quote, int, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/events/%s/odds", c.baseURL, url.PathEscape(sport), url.PathEscape(eventID))
	params := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {strings.Join(markets, ",")},
		"oddsFormat": {"american"},
	}

	body, err := c.get(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, 0, fmt.Errorf("fetch odds for event %s: %w", eventID, err)
	}

	var resp eventOddsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("decode odds response: %w", err)
	}

	quotes, rejected := parseQuotes(&resp)
	if rejected > 0 {
		c.logger.WithFields(logrus.Fields{
			"event_id": eventID,
			"rejected": rejected,
		}).Debug("Dropped malformed or non-O/U outcomes at retrieval boundary")
	}
	return quotes, rejected, nil
}

// get executes a rate-limited GET with circuit breaking
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	c.mu.Lock()
	if c.isOpen {
		lastErr := c.lastError
		c.mu.Unlock()
		return nil, fmt.Errorf("circuit breaker open: %v", lastErr)
	}
	c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		if resp.StatusCode >= 500 {
			c.recordFailure(err)
		}
		return nil, err
	}

	c.mu.Lock()
	c.consecutiveErrors = 0
	c.isOpen = false
	c.mu.Unlock()

	return io.ReadAll(resp.Body)
}

func (c *Client) recordFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveErrors++
	c.lastError = err
	if c.consecutiveErrors >= c.circuitBreakerMax && !c.isOpen {
		c.isOpen = true
		c.logger.Warnf("Circuit breaker opened after %d consecutive errors: %v", c.consecutiveErrors, err)
	}
}

// retryPolicy retries transport errors and 429/5xx responses
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}
