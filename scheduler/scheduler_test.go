package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fiscaldesk/portal/cache"
	"github.com/fiscaldesk/portal/models"
	"github.com/fiscaldesk/portal/recurrence"
)

type countingStore struct {
	mu        sync.Mutex
	listCalls int
}

func (c *countingStore) count() {
	c.mu.Lock()
	c.listCalls++
	c.mu.Unlock()
}

func (c *countingStore) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls
}

func (c *countingStore) ListObligations(context.Context) ([]models.Obligation, error) {
	c.count()
	return nil, nil
}

func (c *countingStore) SaveObligation(context.Context, models.Obligation) error { return nil }

func (c *countingStore) ListTaxes(context.Context) ([]models.Tax, error) {
	c.count()
	return nil, nil
}

func (c *countingStore) SaveTax(context.Context, models.Tax) error { return nil }

func (c *countingStore) ListInstallments(context.Context) ([]models.Installment, error) {
	c.count()
	return nil, nil
}

func (c *countingStore) SaveInstallment(context.Context, models.Installment) error { return nil }

func TestRunOnce_SetsDayGuard(t *testing.T) {
	store := &countingStore{}
	mem := cache.NewMemory()
	s := New(recurrence.NewEngine(store), mem)
	ctx := context.Background()
	now := time.Date(2025, time.June, 1, 0, 10, 0, 0, time.UTC)

	if err := s.runOnce(ctx, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marker, ok := mem.Get(ctx, lastCheckKey); !ok || marker != "2025-06-01" {
		t.Errorf("expected day marker 2025-06-01, got %q (hit=%v)", marker, ok)
	}
	firstCalls := store.calls()
	if firstCalls == 0 {
		t.Fatalf("expected the engine to load the snapshot on the first check")
	}

	// Same day again: the advisory guard short-circuits before the engine runs.
	if err := s.runOnce(ctx, now.Add(2*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.calls() != firstCalls {
		t.Errorf("expected no engine run on a guarded repeat, got %d extra list calls", store.calls()-firstCalls)
	}

	// Next day the guard expires. The engine runs again (and skips internally,
	// since it is not the first of the month).
	nextDay := now.AddDate(0, 0, 1)
	if err := s.runOnce(ctx, nextDay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marker, _ := mem.Get(ctx, lastCheckKey); marker != "2025-06-02" {
		t.Errorf("expected marker advanced to 2025-06-02, got %q", marker)
	}
}
