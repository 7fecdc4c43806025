package analysis

import (
	"strings"
	"testing"
)

// Context scanning looks up one stripped token at a time, so multi-word
// lexicon keys would silently never match.
func TestLexicon_KeysAreSingleTokens(t *testing.T) {
	for word := range valenceLexicon {
		if strings.ContainsAny(word, " \t") {
			t.Errorf("Valence entry %q contains whitespace and can never match", word)
		}
	}
	for word := range boosterIncrements {
		if strings.ContainsAny(word, " \t") {
			t.Errorf("Degree modifier %q contains whitespace and can never match", word)
		}
	}
	for word := range negationWords {
		if strings.ContainsAny(word, " \t") {
			t.Errorf("Negation %q contains whitespace and can never match", word)
		}
	}
}

func TestLexicon_NegationsCarryNoValence(t *testing.T) {
	for word := range negationWords {
		if _, ok := valenceLexicon[word]; ok {
			t.Errorf("Negation %q must not also carry a valence rating", word)
		}
	}
}
