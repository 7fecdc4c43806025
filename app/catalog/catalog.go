package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog from the given YAML file. An empty path yields the
// built-in defaults.
func Load(path string) (*Catalog, error) {
	if path == "" {
		slog.Debug("No catalog file configured, using built-in defaults")
		return defaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	slog.Debug("Catalog loaded", "file", path, "categories", len(c.Categories), "sources", len(c.Sources))

	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one keyword category is required")
	}

	for category, keywords := range c.Categories {
		if len(keywords) == 0 {
			return fmt.Errorf("category '%s' has no keywords", category)
		}
		for _, kw := range keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("category '%s' contains an empty keyword", category)
			}
		}
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	return nil
}

// HasSource reports whether the given source name is configured.
func (c *Catalog) HasSource(source string) bool {
	_, ok := c.Sources[strings.ToLower(source)]
	return ok
}

// Fallbacks returns the ordered list of names to try when a direct fetch for
// the given name yields nothing. The requested name itself is never included.
func (c *Catalog) Fallbacks(source, name string) []string {
	src, ok := c.Sources[strings.ToLower(source)]
	if !ok {
		return nil
	}

	names := src.Related[strings.ToLower(name)]
	if len(names) == 0 {
		names = src.Fallbacks
	}

	result := make([]string, 0, len(names))
	for _, n := range names {
		if !strings.EqualFold(n, name) {
			result = append(result, n)
		}
	}

	return result
}
