package river

import (
	"time"
)

// RawPost is the source-native record produced by a Fetcher. Immutable once
// fetched.
type RawPost struct {
	ID        string
	Title     string
	Body      string
	URL       string
	Score     int
	Comments  int
	CreatedAt time.Time
	Author    string
	Community string

	HasImage     bool
	ImageURL     string
	ThumbnailURL string
}

// AnalyzedPost is a scored post as it appears in the river. Created once
// per pipeline run and never mutated after scoring completes.
type AnalyzedPost struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	URL             string    `json:"url"`
	ImportanceScore float64   `json:"importance_score"`
	SentimentLabel  string    `json:"sentiment_label"`
	SentimentScore  float64   `json:"sentiment_score"`
	TechTags        []string  `json:"tech_tags"`
	CreatedAt       time.Time `json:"created_at"`
	Score           int       `json:"score"`
	Comments        int       `json:"comments"`

	// RelevanceScore feeds the importance calculation; it is not part of
	// the response wire format.
	RelevanceScore float64 `json:"-"`
}

// Search methods reported in a Response.
const (
	SearchMethodDirect   = "direct"
	SearchMethodFallback = "fallback"
)

// Response is the ranked, filtered river for one request.
type Response struct {
	Posts        []AnalyzedPost `json:"posts"`
	Source       string         `json:"source"`
	Name         string         `json:"name"`
	SearchMethod string         `json:"search_method"`
}
