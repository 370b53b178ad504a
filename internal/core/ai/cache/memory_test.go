package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-finder/internal/pkg/common"
)

func sampleResult(title string) common.RecipeResult {
	return common.RecipeResult{
		Recipes: []common.Recipe{{
			Title:        title,
			Description:  "desc",
			Ingredients:  []string{"بيض"},
			Instructions: []string{"step 1", "step 2"},
		}},
		SuggestedIngredients: []string{"جبنة"},
	}
}

func TestMemoryStoreGetPut(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0, 0)
	defer m.Close()

	if _, err := m.Get(ctx, "بيض"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get() on empty store error = %v, want ErrCacheMiss", err)
	}

	if err := m.Put(ctx, "بيض", sampleResult("عجة")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	entry, err := m.Get(ctx, "بيض")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry.Key != "بيض" || entry.Result.Recipes[0].Title != "عجة" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}

	stats := m.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMemoryStorePutDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0, 0)
	defer m.Close()

	_ = m.Put(ctx, "k", sampleResult("first"))
	_ = m.Put(ctx, "k", sampleResult("second"))

	entry, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := entry.Result.Recipes[0].Title; got != "first" {
		t.Fatalf("Title = %q, want first", got)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0, 0)
	defer m.Close()

	result := sampleResult("orig")
	_ = m.Put(ctx, "k", result)
	result.Recipes[0].Title = "mutated by caller"

	entry, _ := m.Get(ctx, "k")
	entry.Result.Recipes[0].Instructions[0] = "mutated by reader"

	again, _ := m.Get(ctx, "k")
	if again.Result.Recipes[0].Title != "orig" || again.Result.Recipes[0].Instructions[0] != "step 1" {
		t.Fatalf("stored entry was mutated: %+v", again.Result.Recipes[0])
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(20*time.Millisecond, 0)
	defer m.Close()

	_ = m.Put(ctx, "k", sampleResult("x"))
	if _, err := m.Get(ctx, "k"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	time.Sleep(40 * time.Millisecond)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get() after expiry error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryStoreMaxSizeEvictsLRU(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0, 2)
	defer m.Close()

	_ = m.Put(ctx, "a", sampleResult("a"))
	_ = m.Put(ctx, "b", sampleResult("b"))
	// a 被讀取過，b 會先被淘汰
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	_ = m.Put(ctx, "c", sampleResult("c"))

	if _, err := m.Get(ctx, "b"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get(b) error = %v, want eviction", err)
	}
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	if _, err := m.Get(ctx, "c"); err != nil {
		t.Fatalf("Get(c) error = %v", err)
	}
	if s := m.Stats(); s.Size != 2 || s.Evictions != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestDisabledStore(t *testing.T) {
	var s Store = Disabled{}
	if _, err := s.Get(context.Background(), "k"); !errors.Is(err, common.ErrCacheDisabled) {
		t.Fatalf("Get() error = %v, want ErrCacheDisabled", err)
	}
	if err := s.Put(context.Background(), "k", common.RecipeResult{}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
}

func TestMemoryStoreZeroMaxSizeIsUnbounded(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0, 0)
	defer m.Close()

	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, k := range keys {
		_ = m.Put(ctx, k, sampleResult(k))
	}
	if s := m.Stats(); s.Size != len(keys) || s.Evictions != 0 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestMemoryStorePutAfterExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(20*time.Millisecond, 0)
	defer m.Close()

	_ = m.Put(ctx, "k", sampleResult("old"))
	time.Sleep(40 * time.Millisecond)
	_ = m.Put(ctx, "k", sampleResult("new"))

	entry, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := entry.Result.Recipes[0].Title; got != "new" {
		t.Fatalf("Title = %q, want new", got)
	}
}
