package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer canonicalizes raw post text and computes the content
// fingerprint used for deduplication. Hashtags and mentions are kept
// verbatim since they carry relevance and sentiment signal.
type Normalizer struct {
	urlPattern        *regexp.Regexp
	whitespacePattern *regexp.Regexp
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		urlPattern:        regexp.MustCompile(`https?://\S+`),
		whitespacePattern: regexp.MustCompile(`\s+`),
	}
}

// Run combines title and body into a single normalized string and returns
// it together with its fingerprint.
func (n *Normalizer) Run(title, body string) (string, string) {
	title = n.Normalize(title)
	body = n.Normalize(body)

	var combined string
	switch {
	case title != "" && body != "":
		combined = title + ". " + body
	case title != "":
		combined = title
	default:
		combined = body
	}

	return combined, n.Fingerprint(combined)
}

// Normalize lowercases the text, strips URLs and collapses whitespace.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = n.urlPattern.ReplaceAllString(text, " ")
	text = n.whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Fingerprint returns a deterministic hash of the normalized text, used for
// equality comparison only.
func (n *Normalizer) Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
