package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/techriver/tech-river/app/river"
)

// PageSize is the provider's maximum listing page size.
const PageSize = 100

const (
	backoffBase = time.Second
	backoffMax  = 30 * time.Second
)

// Client fetches posts from the reddit listing API. A single minimum
// interval between outbound requests is enforced across all callers;
// transient failures are retried with increasing backoff.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	minInterval time.Duration
	maxAttempts int

	mu          sync.Mutex
	lastRequest time.Time
}

func NewClient(baseURL, userAgent string, minInterval, timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		httpClient:  &http.Client{Timeout: timeout},
		minInterval: minInterval,
		maxAttempts: maxAttempts,
	}
}

// Fetch returns the newest posts for a community, newest first, truncated
// to min(limit, PageSize). A definitive "not found" yields an empty result
// without retrying.
func (c *Client) Fetch(ctx context.Context, name string, limit int) ([]river.RawPost, error) {
	if limit > PageSize {
		limit = PageSize
	}

	endpoint := fmt.Sprintf("%s/r/%s/new.json?limit=%d&raw_json=1", c.baseURL, url.PathEscape(name), limit)

	body, err := c.request(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if body == nil {
		// Definitive not-found.
		return nil, nil
	}

	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode listing for '%s': %w", name, err)
	}

	posts := make([]river.RawPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post, ok := c.translate(child, name)
		if !ok {
			continue
		}
		posts = append(posts, post)
		if len(posts) == limit {
			break
		}
	}

	slog.Debug("Fetched listing", "name", name, "children", len(listing.Data.Children), "posts", len(posts))

	return posts, nil
}

// request performs one rate-limited GET with retries. It returns a nil
// body without error for a 404 response.
func (c *Client) request(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := backoffBase << uint(attempt-2)
			if delay > backoffMax {
				delay = backoffMax
			}
			slog.Debug("Retrying upstream request", "attempt", attempt, "delay", delay.String())
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.waitInterval(ctx); err != nil {
			return nil, err
		}

		body, retryable, err := c.do(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: giving up after %d attempts: %v", river.ErrUpstreamUnavailable, c.maxAttempts, lastErr)
}

func (c *Client) do(ctx context.Context, endpoint string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, fmt.Errorf("failed to read response body: %w", err)
		}
		return data, false, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)

	default:
		return nil, false, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
	}
}

// waitInterval suspends the caller until the minimum inter-request
// interval has elapsed since the previous request. A caller cancelled
// mid-wait releases its reserved slot so the next request is not
// penalized.
func (c *Client) waitInterval(ctx context.Context) error {
	c.mu.Lock()
	prev := c.lastRequest
	elapsed := time.Since(prev)
	var wait time.Duration
	if !prev.IsZero() && elapsed < c.minInterval {
		wait = c.minInterval - elapsed
	}
	reserved := time.Now().Add(wait)
	c.lastRequest = reserved
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		if c.lastRequest.Equal(reserved) {
			c.lastRequest = prev
		}
		c.mu.Unlock()
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// translate converts one listing child into a RawPost. Removed, deleted or
// malformed records are skipped.
func (c *Client) translate(child listingChild, name string) (river.RawPost, bool) {
	data := child.Data

	if data.RemovedByCategory != "" || data.Selftext == "[removed]" || data.Selftext == "[deleted]" {
		slog.Debug("Skipping removed post", "id", data.ID)
		return river.RawPost{}, false
	}

	if data.ID == "" || data.Title == "" {
		slog.Warn("Skipping malformed post record", "id", data.ID, "subreddit", name)
		return river.RawPost{}, false
	}

	post := river.RawPost{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Selftext,
		URL:       "https://reddit.com" + data.Permalink,
		Score:     data.Score,
		Comments:  data.NumComments,
		CreatedAt: time.Unix(int64(data.CreatedUTC), 0).UTC(),
		Author:    data.Author,
		Community: data.Subreddit,
	}

	if data.PostHint == "image" {
		post.HasImage = true
		post.ImageURL = data.URL
	}
	if data.Thumbnail != "" && strings.HasPrefix(data.Thumbnail, "http") {
		post.ThumbnailURL = data.Thumbnail
	}

	return post, true
}
