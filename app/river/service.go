package river

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/techriver/tech-river/app/analysis"
	"github.com/techriver/tech-river/app/catalog"
)

// MaxLimit bounds how many posts a single request may ask for; it matches
// the provider page size.
const MaxLimit = 100

// Fetcher retrieves raw posts for a community name, newest first, truncated
// to the given limit.
type Fetcher interface {
	Fetch(ctx context.Context, name string, limit int) ([]RawPost, error)
}

var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,21}$`)

var reservedNames = map[string]bool{
	"www": true, "api": true, "blog": true, "help": true, "info": true,
	"mod": true, "moderators": true, "i": true, "me": true, "r": true,
}

// Service composes the full request flow: cache lookup, fetch with
// fallback, normalization and deduplication, per-post scoring, ranking and
// cache store.
type Service struct {
	fetcher    Fetcher
	normalizer *analysis.Normalizer
	sentiment  *analysis.SentimentScorer
	relevance  *analysis.RelevanceDetector
	ranker     *Ranker
	cache      *ResultCache
	catalog    *catalog.Catalog
}

func NewService(fetcher Fetcher, relevance *analysis.RelevanceDetector,
	ranker *Ranker, cache *ResultCache, cat *catalog.Catalog) *Service {
	return &Service{
		fetcher:    fetcher,
		normalizer: analysis.NewNormalizer(),
		sentiment:  analysis.NewSentimentScorer(),
		relevance:  relevance,
		ranker:     ranker,
		cache:      cache,
		catalog:    cat,
	}
}

// GetRiver returns the ranked, filtered river for (source, name, limit).
func (s *Service) GetRiver(ctx context.Context, source, name string, limit int) (*Response, error) {
	source = strings.ToLower(strings.TrimSpace(source))
	name = strings.ToLower(strings.TrimSpace(name))

	if err := s.validate(source, name, limit); err != nil {
		return nil, err
	}

	if cached := s.cache.Get(source, name, limit); cached != nil {
		slog.Debug("Cache hit", "source", source, "name", name, "limit", limit)
		return cached, nil
	}

	raw, method, err := s.fetchWithFallback(ctx, source, name, limit)
	if err != nil {
		return nil, err
	}

	analyzed, duplicates := s.analyze(raw)
	ranked := s.ranker.Run(analyzed)
	filtered := len(analyzed) - len(ranked)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	response := &Response{
		Posts:        ranked,
		Source:       source,
		Name:         name,
		SearchMethod: method,
	}

	s.cache.Store(source, name, limit, response)

	slog.Info("River built",
		"source", source,
		"name", name,
		"method", method,
		"fetched", len(raw),
		"duplicates", duplicates,
		"filtered", filtered,
		"returned", len(ranked))

	return response, nil
}

func (s *Service) validate(source, name string, limit int) error {
	if limit <= 0 || limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, MaxLimit)
	}
	if !s.catalog.HasSource(source) {
		return fmt.Errorf("%w: unrecognized source '%s'", ErrInvalidArgument, source)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: name must be 1-21 characters, alphanumeric, underscores or hyphens", ErrInvalidArgument)
	}
	if reservedNames[name] {
		return fmt.Errorf("%w: '%s' is a reserved name", ErrInvalidArgument, name)
	}
	return nil
}

// fetchWithFallback fetches the requested name directly and, when that
// yields nothing, walks the catalog's fallback names in order until one
// yields at least one post.
func (s *Service) fetchWithFallback(ctx context.Context, source, name string, limit int) ([]RawPost, string, error) {
	posts, err := s.fetcher.Fetch(ctx, name, limit)
	if err != nil {
		return nil, "", fmt.Errorf("direct fetch for '%s' failed: %w", name, err)
	}
	if len(posts) > 0 {
		return posts, SearchMethodDirect, nil
	}

	for _, fallback := range s.catalog.Fallbacks(source, name) {
		slog.Debug("Trying fallback", "name", name, "fallback", fallback)

		posts, err = s.fetcher.Fetch(ctx, fallback, limit)
		if err != nil {
			slog.Warn("Fallback fetch failed, trying next", "fallback", fallback, "error", err)
			continue
		}
		if len(posts) > 0 {
			slog.Info("Fallback yielded posts", "name", name, "fallback", fallback, "count", len(posts))
			return posts, SearchMethodFallback, nil
		}
	}

	return nil, "", fmt.Errorf("%w: no posts for '%s' or any fallback", ErrNotFound, name)
}

// analyze normalizes and deduplicates the batch, then scores each surviving
// post for sentiment and relevance. Within one batch the first post with a
// given fingerprint wins; later duplicates are dropped before scoring.
func (s *Service) analyze(raw []RawPost) ([]AnalyzedPost, int) {
	seen := make(map[string]bool, len(raw))
	analyzed := make([]AnalyzedPost, 0, len(raw))
	duplicates := 0

	for _, post := range raw {
		text, fingerprint := s.normalizer.Run(post.Title, post.Body)

		if seen[fingerprint] {
			duplicates++
			continue
		}
		seen[fingerprint] = true

		sentimentScore, sentimentLabel := s.sentiment.Run(text)
		tags, relevanceScore := s.relevance.Run(text)

		analyzed = append(analyzed, AnalyzedPost{
			ID:             post.ID,
			Text:           text,
			URL:            post.URL,
			SentimentLabel: sentimentLabel,
			SentimentScore: sentimentScore,
			TechTags:       tags,
			CreatedAt:      post.CreatedAt,
			Score:          post.Score,
			Comments:       post.Comments,
			RelevanceScore: relevanceScore,
		})
	}

	return analyzed, duplicates
}
