package idgen_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/idgen"
)

func TestUUID_New(t *testing.T) {
	g := idgen.UUID{}

	key := g.New()

	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !uuidRegex.MatchString(key) {
		t.Errorf("key %s doesn't match UUID v4 format", key)
	}
}

func TestUUID_New_Unique(t *testing.T) {
	g := idgen.UUID{}

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		key := g.New()
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}

func TestSequential_New(t *testing.T) {
	g := idgen.NewSequential("purchase-")

	want := []string{"purchase-1", "purchase-2", "purchase-3"}
	for _, w := range want {
		if got := g.New(); got != w {
			t.Errorf("New() = %s, want %s", got, w)
		}
	}
}

func TestSequential_Concurrent(t *testing.T) {
	g := idgen.NewSequential("")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := g.New()
				mu.Lock()
				seen[key] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 1000 {
		t.Errorf("got %d unique keys, want 1000", len(seen))
	}
}
