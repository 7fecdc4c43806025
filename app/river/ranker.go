package river

import (
	"sort"
	"time"
)

// Weights configures the importance calculation. The four component weights
// are expected to sum to 1.0 so the weighted sum lands in [0, 1] before
// clamping; the defaults do.
type Weights struct {
	Engagement     float64
	Recency        float64
	Relevance      float64
	SentimentBonus float64

	// Threshold drops posts whose importance falls below it.
	Threshold float64
	// EngagementCeiling is the score+comments count at which the
	// engagement component saturates.
	EngagementCeiling float64
	// RecencyHalfLife is the age in hours at which the recency component
	// reaches zero.
	RecencyHalfLife float64
}

func DefaultWeights() Weights {
	return Weights{
		Engagement:        0.4,
		Recency:           0.3,
		Relevance:         0.2,
		SentimentBonus:    0.1,
		Threshold:         0.15,
		EngagementCeiling: 500,
		RecencyHalfLife:   48,
	}
}

// Ranker combines engagement, recency, relevance and sentiment into a
// single importance score, filters below-threshold posts and sorts the
// remainder.
type Ranker struct {
	weights Weights
	now     func() time.Time
}

func NewRanker(weights Weights) *Ranker {
	return &Ranker{
		weights: weights,
		now:     time.Now,
	}
}

// Run populates importance scores, drops posts below the threshold and
// returns the survivors sorted by descending importance, ties broken by
// more recent creation time. Output is deterministic for identical input.
func (r *Ranker) Run(posts []AnalyzedPost) []AnalyzedPost {
	now := r.now()

	ranked := make([]AnalyzedPost, 0, len(posts))
	for _, post := range posts {
		post.ImportanceScore = r.importance(post, now)
		if post.ImportanceScore < r.weights.Threshold {
			continue
		}
		ranked = append(ranked, post)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ImportanceScore != ranked[j].ImportanceScore {
			return ranked[i].ImportanceScore > ranked[j].ImportanceScore
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}

func (r *Ranker) importance(post AnalyzedPost, now time.Time) float64 {
	engagement := r.engagementComponent(post.Score, post.Comments)
	recency := r.recencyComponent(post.CreatedAt, now)
	relevance := post.RelevanceScore
	sentiment := r.sentimentComponent(post.SentimentLabel, post.SentimentScore)

	importance := engagement*r.weights.Engagement +
		recency*r.weights.Recency +
		relevance*r.weights.Relevance +
		sentiment*r.weights.SentimentBonus

	return clamp01(importance)
}

// engagementComponent saturates score+comments against the configured
// ceiling.
func (r *Ranker) engagementComponent(score, comments int) float64 {
	combined := float64(score + comments)
	if combined <= 0 {
		return 0.0
	}
	return clamp01(combined / r.weights.EngagementCeiling)
}

// recencyComponent decays linearly from 1.0 at creation to 0.0 at the
// configured half-life.
func (r *Ranker) recencyComponent(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0.0
	}
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return clamp01(1.0 - ageHours/r.weights.RecencyHalfLife)
}

// sentimentComponent grants a bonus for positive sentiment only; negative
// sentiment is not penalized.
func (r *Ranker) sentimentComponent(label string, score float64) float64 {
	if label != "positive" {
		return 0.0
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
