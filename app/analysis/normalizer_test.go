package analysis

import (
	"strings"
	"testing"
)

func TestNormalizer_Run_CombinesTitleAndBody(t *testing.T) {
	n := NewNormalizer()

	text, fingerprint := n.Run("Big News", "Something Happened")
	if text != "big news. something happened" {
		t.Errorf("Unexpected combined text: %q", text)
	}
	if fingerprint == "" {
		t.Error("Fingerprint should not be empty")
	}

	titleOnly, _ := n.Run("Big News", "")
	if titleOnly != "big news" {
		t.Errorf("Expected title-only text without separator, got %q", titleOnly)
	}

	bodyOnly, _ := n.Run("", "Something Happened")
	if bodyOnly != "something happened" {
		t.Errorf("Expected body-only text without separator, got %q", bodyOnly)
	}
}

func TestNormalizer_Normalize_StripsURLs(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize("Check https://example.com/path?q=1 now")
	if got != "check now" {
		t.Errorf("Expected URLs stripped, got %q", got)
	}

	got = n.Normalize("see http://a.io and https://b.io too")
	if strings.Contains(got, "http") {
		t.Errorf("Expected all URLs removed, got %q", got)
	}
}

func TestNormalizer_Normalize_KeepsHashtagsAndMentions(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize("Shipped #golang update, thanks @maintainer")
	if !strings.Contains(got, "#golang") {
		t.Errorf("Hashtags should survive normalization, got %q", got)
	}
	if !strings.Contains(got, "@maintainer") {
		t.Errorf("Mentions should survive normalization, got %q", got)
	}
}

func TestNormalizer_Normalize_CollapsesWhitespace(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize("  too \t many\n\n spaces  ")
	if got != "too many spaces" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestNormalizer_Fingerprint(t *testing.T) {
	n := NewNormalizer()

	_, a := n.Run("Same Title", "Same Body")
	_, b := n.Run("Same Title", "Same Body")
	if a != b {
		t.Error("Identical input must produce identical fingerprints")
	}

	// Case and whitespace differences disappear in normalization.
	_, c := n.Run("SAME   Title", "Same\tBody")
	if a != c {
		t.Error("Normalization-equivalent input must produce identical fingerprints")
	}

	_, d := n.Run("Different Title", "Same Body")
	if a == d {
		t.Error("Different input must produce different fingerprints")
	}
}
