package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error for default catalog, got %v", err)
	}

	if len(c.Categories) == 0 {
		t.Error("Default catalog should have keyword categories")
	}
	if !c.HasSource("reddit") {
		t.Error("Default catalog should recognize the 'reddit' source")
	}
	if c.HasSource("usenet") {
		t.Error("Default catalog should not recognize unknown sources")
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `
categories:
  languages:
    - python
    - rust
sources:
  reddit:
    related:
      python:
        - learnpython
    fallbacks:
      - technology
`
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(c.Categories["languages"]) != 2 {
		t.Errorf("Expected 2 language keywords, got %d", len(c.Categories["languages"]))
	}

	fallbacks := c.Fallbacks("reddit", "python")
	if len(fallbacks) != 1 || fallbacks[0] != "learnpython" {
		t.Errorf("Expected related fallbacks [learnpython], got %v", fallbacks)
	}
}

func TestLoad_InvalidCatalog(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no categories", "sources:\n  reddit:\n    fallbacks: [technology]\n"},
		{"empty category", "categories:\n  languages: []\nsources:\n  reddit:\n    fallbacks: [technology]\n"},
		{"no sources", "categories:\n  languages: [python]\n"},
		{"malformed yaml", "categories: [\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "catalog.yml")
		if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
			t.Fatalf("Failed to write catalog file: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Expected error for %s", tc.name)
		}
	}
}

func TestFallbacks_DefaultList(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Names without a related entry fall back to the source-wide list.
	fallbacks := c.Fallbacks("reddit", "obscurecommunity")
	if len(fallbacks) == 0 {
		t.Fatal("Expected source-wide fallbacks for unmapped name")
	}

	// The requested name itself is excluded from its fallback list.
	for _, n := range c.Fallbacks("reddit", "technology") {
		if n == "technology" {
			t.Error("Fallback list should not contain the requested name")
		}
	}
}

func TestFallbacks_UnknownSource(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := c.Fallbacks("usenet", "technology"); got != nil {
		t.Errorf("Expected nil fallbacks for unknown source, got %v", got)
	}
}
