package river

import (
	"fmt"
	"testing"
	"time"
)

func TestResultCache_MissThenHit(t *testing.T) {
	cache := NewResultCache(time.Minute, 16)

	if got := cache.Get("reddit", "technology", 10); got != nil {
		t.Error("Expected miss on empty cache")
	}

	response := &Response{Source: "reddit", Name: "technology", SearchMethod: SearchMethodDirect}
	cache.Store("reddit", "technology", 10, response)

	got := cache.Get("reddit", "technology", 10)
	if got != response {
		t.Error("Expected the stored response back")
	}
}

func TestResultCache_LimitIsPartOfKey(t *testing.T) {
	cache := NewResultCache(time.Minute, 16)

	cache.Store("reddit", "technology", 10, &Response{Name: "technology"})

	if got := cache.Get("reddit", "technology", 20); got != nil {
		t.Error("Different limits must be different cache entries")
	}
	if got := cache.Get("reddit", "programming", 10); got != nil {
		t.Error("Different names must be different cache entries")
	}
}

func TestResultCache_TTLExpiry(t *testing.T) {
	cache := NewResultCache(10*time.Millisecond, 16)

	cache.Store("reddit", "technology", 10, &Response{Name: "technology"})
	if cache.Get("reddit", "technology", 10) == nil {
		t.Fatal("Expected hit before TTL")
	}

	time.Sleep(15 * time.Millisecond)

	if cache.Get("reddit", "technology", 10) != nil {
		t.Error("Expected stale entry to be treated as a miss")
	}
	if cache.Len() != 0 {
		t.Error("Stale entry should be evicted on lookup")
	}
}

func TestResultCache_MaxEntriesEvictsOldest(t *testing.T) {
	cache := NewResultCache(time.Minute, 3)

	for i := 0; i < 3; i++ {
		cache.Store("reddit", fmt.Sprintf("name%d", i), 10, &Response{})
		time.Sleep(time.Millisecond)
	}

	cache.Store("reddit", "name3", 10, &Response{})

	if cache.Len() != 3 {
		t.Errorf("Expected cache bounded at 3 entries, got %d", cache.Len())
	}
	if cache.Get("reddit", "name0", 10) != nil {
		t.Error("Oldest entry should have been evicted")
	}
	if cache.Get("reddit", "name3", 10) == nil {
		t.Error("Newest entry should be present")
	}
}

func TestResultCache_StoreOverwrites(t *testing.T) {
	cache := NewResultCache(time.Minute, 16)

	first := &Response{SearchMethod: SearchMethodDirect}
	second := &Response{SearchMethod: SearchMethodFallback}

	cache.Store("reddit", "technology", 10, first)
	cache.Store("reddit", "technology", 10, second)

	if got := cache.Get("reddit", "technology", 10); got != second {
		t.Error("Store must overwrite the existing entry")
	}
	if cache.Len() != 1 {
		t.Errorf("Overwrite must not grow the cache, got %d entries", cache.Len())
	}
}

func TestResultCache_Sweep(t *testing.T) {
	cache := NewResultCache(10*time.Millisecond, 16)

	cache.Store("reddit", "technology", 10, &Response{})
	cache.Store("reddit", "programming", 10, &Response{})

	time.Sleep(15 * time.Millisecond)
	cache.Store("reddit", "golang", 10, &Response{})

	removed := cache.Sweep()
	if removed != 2 {
		t.Errorf("Expected 2 stale entries swept, got %d", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 fresh entry left, got %d", cache.Len())
	}
}

func TestResultCache_ConcurrentAccess(t *testing.T) {
	cache := NewResultCache(time.Minute, 32)

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				name := fmt.Sprintf("name%d", j%10)
				cache.Store("reddit", name, n, &Response{Name: name})
				cache.Get("reddit", name, n)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
