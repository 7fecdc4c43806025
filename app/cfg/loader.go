package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`

	// Upstream provider configuration
	RedditBaseUrl     string `long:"reddit-base-url" env:"REDDIT_BASE_URL" default:"https://www.reddit.com" description:"Base URL of the reddit listing API"`
	UserAgent         string `long:"user-agent" env:"USER_AGENT" default:"TechRiver/1.0" description:"User agent string for outbound HTTP requests"`
	FetchTimeout      int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15" description:"Timeout for a single upstream request in seconds"`
	FetchMaxAttempts  int    `long:"fetch-max-attempts" env:"FETCH_MAX_ATTEMPTS" default:"3" description:"Maximum attempts per upstream request before giving up"`
	RateLimitInterval int    `long:"rate-limit-interval" env:"RATE_LIMIT_INTERVAL" default:"2" description:"Minimum interval between outbound requests in seconds"`

	// Analysis configuration
	CatalogPath         string  `long:"catalog-path" env:"CATALOG_PATH" description:"Path to the YAML keyword catalog (built-in defaults when unset)"`
	ImportanceThreshold float64 `long:"importance-threshold" env:"IMPORTANCE_THRESHOLD" default:"0.15" description:"Minimum importance score for a post to appear in the river"`
	EngagementWeight    float64 `long:"engagement-weight" env:"ENGAGEMENT_WEIGHT" default:"0.4" description:"Importance weight of the engagement component"`
	RecencyWeight       float64 `long:"recency-weight" env:"RECENCY_WEIGHT" default:"0.3" description:"Importance weight of the recency component"`
	RelevanceWeight     float64 `long:"relevance-weight" env:"RELEVANCE_WEIGHT" default:"0.2" description:"Importance weight of the relevance component"`
	SentimentWeight     float64 `long:"sentiment-weight" env:"SENTIMENT_WEIGHT" default:"0.1" description:"Importance weight of the sentiment bonus component"`
	EngagementCeiling   float64 `long:"engagement-ceiling" env:"ENGAGEMENT_CEILING" default:"500" description:"Engagement count at which the engagement component saturates"`
	RecencyHalfLife     float64 `long:"recency-half-life" env:"RECENCY_HALF_LIFE" default:"48" description:"Post age in hours at which the recency component reaches zero"`
	RelevanceSaturation int     `long:"relevance-saturation" env:"RELEVANCE_SATURATION" default:"5" description:"Keyword match count at which the relevance score saturates"`

	// Cache configuration
	CacheTTL        int `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Result cache TTL in seconds"`
	CacheMaxEntries int `long:"cache-max-entries" env:"CACHE_MAX_ENTRIES" default:"256" description:"Maximum number of cached river responses"`
	SweepInterval   int `long:"sweep-interval" env:"SWEEP_INTERVAL" default:"60" description:"Interval between cache sweep runs in seconds"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:                raw.Port,
		RedditBaseUrl:       raw.RedditBaseUrl,
		UserAgent:           raw.UserAgent,
		FetchTimeout:        raw.FetchTimeout,
		FetchMaxAttempts:    raw.FetchMaxAttempts,
		RateLimitInterval:   raw.RateLimitInterval,
		CatalogPath:         raw.CatalogPath,
		ImportanceThreshold: raw.ImportanceThreshold,
		EngagementWeight:    raw.EngagementWeight,
		RecencyWeight:       raw.RecencyWeight,
		RelevanceWeight:     raw.RelevanceWeight,
		SentimentWeight:     raw.SentimentWeight,
		EngagementCeiling:   raw.EngagementCeiling,
		RecencyHalfLife:     raw.RecencyHalfLife,
		RelevanceSaturation: raw.RelevanceSaturation,
		CacheTTL:            raw.CacheTTL,
		CacheMaxEntries:     raw.CacheMaxEntries,
		SweepInterval:       raw.SweepInterval,
		Debug:               raw.Debug,
		Version:             GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.FetchMaxAttempts < 1 {
		return fmt.Errorf("fetch-max-attempts must be at least 1, got %d", cfg.FetchMaxAttempts)
	}
	if cfg.ImportanceThreshold < 0 || cfg.ImportanceThreshold > 1 {
		return fmt.Errorf("importance-threshold must be in [0, 1], got %g", cfg.ImportanceThreshold)
	}
	if cfg.EngagementCeiling <= 0 {
		return fmt.Errorf("engagement-ceiling must be positive, got %g", cfg.EngagementCeiling)
	}
	if cfg.RecencyHalfLife <= 0 {
		return fmt.Errorf("recency-half-life must be positive, got %g", cfg.RecencyHalfLife)
	}
	if cfg.RelevanceSaturation < 1 {
		return fmt.Errorf("relevance-saturation must be at least 1, got %d", cfg.RelevanceSaturation)
	}
	return nil
}
