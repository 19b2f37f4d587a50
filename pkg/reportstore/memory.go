package reportstore

import (
	"context"
	"time"

	"github.com/dmitrymomot/vtree/pkg/report"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory keeps the most recently used reports in process memory.
type Memory struct {
	cache *lru[string, memoryEntry]
	ttl   time.Duration
	now   func() time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory keeps up to capacity reports. A positive ttl expires reports on
// read; zero keeps them until evicted.
func NewMemory(capacity int, ttl time.Duration, opts ...MemoryOption) *Memory {
	m := &Memory{
		cache: newLRU[string, memoryEntry](capacity),
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Save(ctx context.Context, enc report.Encoded) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := marshal(enc)
	if err != nil {
		return "", err
	}

	entry := memoryEntry{data: data}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	id := newID()
	m.cache.put(id, entry)
	return id, nil
}

func (m *Memory) Load(ctx context.Context, id string) (report.Encoded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	entry, ok := m.cache.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.cache.remove(id)
		return nil, ErrNotFound
	}
	return unmarshal(entry.data)
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.cache.remove(id)
	return nil
}

// Len returns the number of stored reports, including expired ones not yet
// read.
func (m *Memory) Len() int { return m.cache.len() }
