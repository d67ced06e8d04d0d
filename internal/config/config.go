// Package config provides configuration management for the Prop Scout application.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	OddsAPI OddsAPIConfig `mapstructure:"odds_api" validate:"required"`
	Books   BooksConfig   `mapstructure:"books" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Scanner ScannerConfig `mapstructure:"scanner" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// OddsAPIConfig represents the quote-retrieval API configuration
type OddsAPIConfig struct {
	BaseURL            string   `mapstructure:"base_url" validate:"required,url"`
	APIKey             string   `mapstructure:"api_key" validate:"required"`
	Regions            []string `mapstructure:"regions" validate:"required,min=1"`
	TimeoutSeconds     int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries         int      `mapstructure:"max_retries" validate:"gte=0"`
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
}

// BooksConfig partitions bookmakers into soft (fixed-payout) and sharp sets.
// Any book key not listed as soft is treated as sharp.
type BooksConfig struct {
	SoftBooks        []string `mapstructure:"soft_books" validate:"required,min=1"`
	PrimarySoftBook  string   `mapstructure:"primary_soft_book" validate:"required"`
	GoldStandardBook string   `mapstructure:"gold_standard_book" validate:"required"`
}

// IsSoft reports whether a book key belongs to the soft set
func (b *BooksConfig) IsSoft(bookKey string) bool {
	for _, key := range b.SoftBooks {
		if key == bookKey {
			return true
		}
	}
	return false
}

// MarketRule holds the per-market thresholds used by the classifier and estimator
type MarketRule struct {
	// AltLineTolerance is the largest soft/sharp point gap still treated as the
	// same market point; anything beyond it is assumed to be an alternate line.
	AltLineTolerance float64 `mapstructure:"alt_line_tolerance" validate:"required,gt=0"`
	// ProbMultiplier approximates how much one point of edge moves true win
	// probability for this market.
	ProbMultiplier float64 `mapstructure:"prob_multiplier" validate:"required,gt=0"`
}

// EngineConfig represents matching-engine thresholds
type EngineConfig struct {
	MinEdgeThreshold    float64               `mapstructure:"min_edge_threshold" validate:"required,gt=0"`
	JuicePriceThreshold int                   `mapstructure:"juice_price_threshold" validate:"required,gt=100"`
	Markets             map[string]MarketRule `mapstructure:"markets" validate:"required,min=1,dive"`
	DefaultRule         MarketRule            `mapstructure:"default_rule" validate:"required"`
}

// RuleFor returns the market rule for a market key, falling back to the default
func (e *EngineConfig) RuleFor(market string) MarketRule {
	if rule, ok := e.Markets[market]; ok {
		return rule
	}
	return e.DefaultRule
}

// ScannerConfig represents scan orchestration configuration
type ScannerConfig struct {
	Sport           string   `mapstructure:"sport" validate:"required"`
	Markets         []string `mapstructure:"markets" validate:"required,min=1"`
	Concurrency     int      `mapstructure:"concurrency" validate:"required,gt=0"`
	BatchDelayMS    int      `mapstructure:"batch_delay_ms" validate:"gte=0"`
	CacheTTLSeconds int      `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	WatchInterval   int      `mapstructure:"watch_interval_seconds" validate:"gte=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// DefaultMarketRules returns the built-in per-market threshold table. Low-scoring
// discrete stats get tight tolerances and high multipliers; high-variance
// yardage stats the reverse.
func DefaultMarketRules() map[string]MarketRule {
	return map[string]MarketRule{
		"player_points":        {AltLineTolerance: 8, ProbMultiplier: 3.5},
		"player_rebounds":      {AltLineTolerance: 4, ProbMultiplier: 6.0},
		"player_assists":       {AltLineTolerance: 4, ProbMultiplier: 6.0},
		"player_threes":        {AltLineTolerance: 2.5, ProbMultiplier: 9.0},
		"player_pass_yds":      {AltLineTolerance: 40, ProbMultiplier: 0.3},
		"player_rush_yds":      {AltLineTolerance: 30, ProbMultiplier: 0.5},
		"player_reception_yds": {AltLineTolerance: 30, ProbMultiplier: 0.5},
		"player_receptions":    {AltLineTolerance: 2.5, ProbMultiplier: 8.0},
		"player_pass_tds":      {AltLineTolerance: 1.5, ProbMultiplier: 15.0},
	}
}

// DefaultRule used when a market has no explicit entry
func DefaultRule() MarketRule {
	return MarketRule{AltLineTolerance: 10, ProbMultiplier: 2.0}
}
