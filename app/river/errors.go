package river

import (
	"errors"
)

var (
	// ErrInvalidArgument indicates a request rejected before any network
	// call: non-positive or excessive limit, empty or malformed name,
	// unrecognized source.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates that no posts exist for the request, neither
	// directly nor through any fallback name.
	ErrNotFound = errors.New("no posts found")

	// ErrUpstreamUnavailable indicates the provider stayed unreachable
	// after all retries were exhausted.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
