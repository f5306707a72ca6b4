package cache

import (
	"context"
	"sync"
	"testing"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if _, ok := c.Get(ctx, "recurrence:last_check"); ok {
		t.Errorf("expected miss on empty cache")
	}

	if err := c.Set(ctx, "recurrence:last_check", "2025-06-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := c.Get(ctx, "recurrence:last_check")
	if !ok || got != "2025-06-01" {
		t.Errorf("expected stored marker, got %q (hit=%v)", got, ok)
	}

	if err := c.Set(ctx, "recurrence:last_check", "2025-06-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Get(ctx, "recurrence:last_check"); got != "2025-06-02" {
		t.Errorf("expected overwritten marker, got %q", got)
	}
}

func TestMemoryConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", "v")
			c.Get(ctx, "k")
		}()
	}
	wg.Wait()

	if got, ok := c.Get(ctx, "k"); !ok || got != "v" {
		t.Errorf("expected value survived concurrent access, got %q (hit=%v)", got, ok)
	}
}
