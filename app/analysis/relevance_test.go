package analysis

import (
	"reflect"
	"testing"
)

func testCategories() map[string][]string {
	return map[string][]string{
		"languages":  {"python", "java", "javascript", "c++"},
		"frameworks": {"django", "react"},
		"ai_ml":      {"machine learning", "scikit-learn"},
	}
}

func TestRelevanceDetector_MatchesKeywords(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, score := d.Run("learning python and django for the backend")

	found := map[string]bool{}
	for _, tag := range tags {
		found[tag] = true
	}
	if !found["python"] || !found["django"] {
		t.Errorf("Expected python and django in tags, got %v", tags)
	}
	if score <= 0 {
		t.Errorf("Expected positive relevance score, got %g", score)
	}
}

func TestRelevanceDetector_NoMatches(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, score := d.Run("gardening tips for the summer")
	if tags == nil || len(tags) != 0 {
		t.Errorf("Expected empty non-nil tags, got %v", tags)
	}
	if score != 0.0 {
		t.Errorf("Expected relevance score 0.0, got %g", score)
	}
}

func TestRelevanceDetector_NoPartialOverlap(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, _ := d.Run("migrating everything to javascript this year")
	if !reflect.DeepEqual(tags, []string{"javascript"}) {
		t.Errorf("Expected only javascript, got %v", tags)
	}

	tags, _ = d.Run("java is still everywhere")
	if !reflect.DeepEqual(tags, []string{"java"}) {
		t.Errorf("Expected only java, got %v", tags)
	}
}

func TestRelevanceDetector_FirstMatchOrder(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, _ := d.Run("django before python here")
	if !reflect.DeepEqual(tags, []string{"django", "python"}) {
		t.Errorf("Expected tags in first-match order, got %v", tags)
	}
}

func TestRelevanceDetector_HyphenTolerance(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, _ := d.Run("training models with scikit learn")
	if !reflect.DeepEqual(tags, []string{"scikit-learn"}) {
		t.Errorf("Expected hyphen-tolerant match for scikit-learn, got %v", tags)
	}

	tags, _ = d.Run("machine-learning pipelines in production")
	if !reflect.DeepEqual(tags, []string{"machine learning"}) {
		t.Errorf("Expected hyphenated variant to match, got %v", tags)
	}
}

func TestRelevanceDetector_NonWordKeyword(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, _ := d.Run("porting the engine from c++ to rust")
	if !reflect.DeepEqual(tags, []string{"c++"}) {
		t.Errorf("Expected c++ to match, got %v", tags)
	}
}

func TestRelevanceDetector_Saturation(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 2)

	_, score := d.Run("python java javascript django react")
	if score != 1.0 {
		t.Errorf("Expected saturated score 1.0, got %g", score)
	}

	d = NewRelevanceDetector(testCategories(), 5)
	_, score = d.Run("python and java")
	if score != 0.4 {
		t.Errorf("Expected score 0.4 for 2 of 5 matches, got %g", score)
	}
}

func TestRelevanceDetector_Idempotent(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	text := "react and django with machine learning on top"
	tags1, score1 := d.Run(text)
	tags2, score2 := d.Run(text)

	if !reflect.DeepEqual(tags1, tags2) || score1 != score2 {
		t.Errorf("Detector must be idempotent: (%v,%g) vs (%v,%g)", tags1, score1, tags2, score2)
	}
}

func TestRelevanceDetector_EmptyInput(t *testing.T) {
	d := NewRelevanceDetector(testCategories(), 5)

	tags, score := d.Run("")
	if tags == nil || len(tags) != 0 || score != 0.0 {
		t.Errorf("Expected empty non-nil tags and 0.0 for empty input, got %v, %g", tags, score)
	}
}
