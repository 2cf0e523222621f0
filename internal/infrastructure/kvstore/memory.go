package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/flight-finder/internal/infrastructure/timeutil"
)

type entry struct {
	value  string
	expiry time.Time
}

// Memory is an in-process Store. Expiry is evaluated lazily against its clock.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   timeutil.Clock
}

// NewMemory creates an empty in-memory store. A nil clock uses the system time.
func NewMemory(clock timeutil.Clock) *Memory {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Memory{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get implements Store.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}

	if !e.expiry.IsZero() && !m.clock.Now().Before(e.expiry) {
		m.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it.
		if cur, ok := m.entries[key]; ok && cur.expiry.Equal(e.expiry) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", ErrNotFound
	}

	return e.value, nil
}

// Set implements Store.
func (m *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expiry = m.clock.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

// Remove implements Store.
func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ Store = (*Memory)(nil)
