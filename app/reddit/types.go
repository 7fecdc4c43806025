package reddit

// Wire types for the reddit listing API.

type listingResponse struct {
	Data listingData `json:"data"`
}

type listingData struct {
	Children []listingChild `json:"children"`
}

type listingChild struct {
	Kind string      `json:"kind"`
	Data listingPost `json:"data"`
}

type listingPost struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Selftext          string  `json:"selftext"`
	Permalink         string  `json:"permalink"`
	CreatedUTC        float64 `json:"created_utc"`
	Score             int     `json:"score"`
	NumComments       int     `json:"num_comments"`
	Author            string  `json:"author"`
	Subreddit         string  `json:"subreddit"`
	RemovedByCategory string  `json:"removed_by_category"`
	PostHint          string  `json:"post_hint"`
	URL               string  `json:"url"`
	Thumbnail         string  `json:"thumbnail"`
}
