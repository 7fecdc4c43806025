package catalog

// Catalog holds the keyword-category mapping used for relevance detection
// and the per-source fallback lists used when a direct fetch yields nothing.

type Catalog struct {
	Categories map[string][]string `yaml:"categories"`
	Sources    map[string]Source   `yaml:"sources"`
}

type Source struct {
	// Related maps a community name to the ordered list of names to try
	// when the direct fetch comes back empty.
	Related map[string][]string `yaml:"related"`
	// Fallbacks is used for names without a Related entry.
	Fallbacks []string `yaml:"fallbacks"`
}
