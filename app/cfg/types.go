package cfg

type Cfg struct {
	// HTTP server configuration
	Port string

	// Upstream provider configuration
	RedditBaseUrl     string
	UserAgent         string
	FetchTimeout      int // seconds
	FetchMaxAttempts  int
	RateLimitInterval int // seconds between outbound requests

	// Analysis configuration
	CatalogPath         string
	ImportanceThreshold float64
	EngagementWeight    float64
	RecencyWeight       float64
	RelevanceWeight     float64
	SentimentWeight     float64
	EngagementCeiling   float64
	RecencyHalfLife     float64 // hours
	RelevanceSaturation int

	// Cache configuration
	CacheTTL        int // seconds
	CacheMaxEntries int
	SweepInterval   int // seconds

	// Application metadata
	Debug   bool
	Version string
}
