package analysis

import (
	"math"
	"strings"
	"unicode"
)

// Sentiment label thresholds. Scores at or above PositiveThreshold are
// labeled positive, scores at or below NegativeThreshold negative,
// everything in between neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05

	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

const (
	// negationFactor flips and dampens a valence preceded by a negation.
	negationFactor = -0.74
	// capsBoost is added to the valence magnitude of an all-caps word.
	capsBoost = 0.733
	// exclamationBoost is the per-mark amplification, capped at 4 marks.
	exclamationBoost    = 0.292
	maxExclamationMarks = 4
	// normalizationAlpha shapes the compound score normalization.
	normalizationAlpha = 15.0
	// negationWindow is how many preceding tokens are scanned for
	// negations and degree modifiers.
	negationWindow = 3
)

// SentimentScorer computes a lexicon-based compound sentiment score in
// [-1, 1]. It is a pure function over its input and safe for concurrent use.
type SentimentScorer struct{}

func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{}
}

// Run scores the given text and returns the compound score and its label.
// Empty or non-lexical input yields 0.0 and "neutral".
func (s *SentimentScorer) Run(text string) (float64, string) {
	if strings.TrimSpace(text) == "" {
		return 0.0, LabelNeutral
	}

	tokens := strings.Fields(text)
	allCaps := isAllCaps(tokens)

	var sum float64
	for i, token := range tokens {
		word := stripToken(token)
		if word == "" {
			continue
		}

		valence, ok := valenceLexicon[strings.ToLower(word)]
		if !ok {
			continue
		}

		// Emphasis through capitalization, unless the whole text shouts.
		if !allCaps && isUpper(word) {
			if valence > 0 {
				valence += capsBoost
			} else {
				valence -= capsBoost
			}
		}

		valence = s.applyContext(tokens, i, valence)
		sum += valence
	}

	if sum == 0 {
		return 0.0, LabelNeutral
	}

	// Exclamation marks amplify whichever direction the text leans.
	marks := strings.Count(text, "!")
	if marks > maxExclamationMarks {
		marks = maxExclamationMarks
	}
	amplification := float64(marks) * exclamationBoost
	if sum > 0 {
		sum += amplification
	} else {
		sum -= amplification
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	compound = math.Max(-1.0, math.Min(1.0, compound))

	return compound, LabelFor(compound)
}

// LabelFor maps a compound score to its three-way label.
func LabelFor(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// applyContext scans the tokens preceding position i for negations and
// degree modifiers, scaled down with distance.
func (s *SentimentScorer) applyContext(tokens []string, i int, valence float64) float64 {
	distanceScale := [negationWindow]float64{1.0, 0.95, 0.9}

	for d := 1; d <= negationWindow && i-d >= 0; d++ {
		prev := strings.ToLower(stripToken(tokens[i-d]))
		if prev == "" {
			continue
		}

		if negationWords[prev] {
			valence *= negationFactor
			continue
		}

		if inc, ok := boosterIncrements[prev]; ok {
			scaled := inc * distanceScale[d-1]
			if valence > 0 {
				valence += scaled
			} else {
				valence -= scaled
			}
		}
	}

	return valence
}

// stripToken trims surrounding punctuation, keeping intra-word marks such
// as the apostrophe in "don't".
func stripToken(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func isUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isAllCaps(tokens []string) bool {
	for _, token := range tokens {
		word := stripToken(token)
		if word == "" {
			continue
		}
		if !isUpper(word) {
			return false
		}
	}
	return true
}
