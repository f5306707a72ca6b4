// Package cache holds the advisory day-guard marker: the date of the last
// completed recurrence check for one execution context. It is not shared
// consistency state; the authoritative idempotency layer is the period guard
// against persisted records.
package cache

import (
	"context"
	"sync"
)

// Cache is a small string key-value store.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process Cache, used when no Redis address is configured and
// in tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
