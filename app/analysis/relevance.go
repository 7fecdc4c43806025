package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// RelevanceDetector matches configured technology keywords against
// normalized text. Keywords from all categories are compiled into a single
// word-boundary matcher, longest keyword first, so "javascript" never also
// tags "java".
type RelevanceDetector struct {
	pattern    *regexp.Regexp
	canonical  map[string]string
	saturation float64
}

var separatorPattern = regexp.MustCompile(`[\s-]+`)

// NewRelevanceDetector precompiles the matcher for the given
// category-to-keywords mapping. The relevance score saturates to 1.0 once
// saturation distinct keywords match.
func NewRelevanceDetector(categories map[string][]string, saturation int) *RelevanceDetector {
	unique := make(map[string]bool)
	canonical := make(map[string]string)

	for _, keywords := range categories {
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			unique[kw] = true
			canonical[canonicalKey(kw)] = kw
		}
	}

	sorted := make([]string, 0, len(unique))
	for kw := range unique {
		sorted = append(sorted, kw)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	alternatives := make([]string, 0, len(sorted))
	for _, kw := range sorted {
		alternatives = append(alternatives, keywordPattern(kw))
	}

	var pattern *regexp.Regexp
	if len(alternatives) > 0 {
		pattern = regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
	}

	return &RelevanceDetector{
		pattern:    pattern,
		canonical:  canonical,
		saturation: float64(saturation),
	}
}

// Run returns the matched keywords in first-match order and the saturating
// relevance score. Re-running on the same text yields identical results.
// The returned slice is never nil so tags always serialize as a JSON array.
func (d *RelevanceDetector) Run(text string) ([]string, float64) {
	if text == "" || d.pattern == nil {
		return []string{}, 0.0
	}

	matches := d.pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}, 0.0
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag, ok := d.canonical[canonicalKey(m)]
		if !ok {
			tag = strings.ToLower(m)
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	score := float64(len(tags)) / d.saturation
	if score > 1.0 {
		score = 1.0
	}

	return tags, score
}

// keywordPattern builds a hyphen- and whitespace-tolerant word-boundary
// pattern for a single keyword.
func keywordPattern(kw string) string {
	parts := separatorPattern.Split(kw, -1)
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, regexp.QuoteMeta(p))
	}

	pattern := strings.Join(escaped, `[\s-]+`)

	if isWordRune(rune(kw[0])) {
		pattern = `\b` + pattern
	}
	if isWordRune(rune(kw[len(kw)-1])) {
		pattern = pattern + `\b`
	}

	return pattern
}

// canonicalKey collapses hyphen/whitespace variants so a match maps back to
// its configured keyword.
func canonicalKey(s string) string {
	return separatorPattern.ReplaceAllString(strings.ToLower(s), " ")
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
