package cache

import (
	"sync"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// entry pairs a cached report with the moment it was stored.
type entry struct {
	report    weather.Report
	fetchedAt time.Time
}

// Memory is a concurrency-safe in-memory report cache keyed by city.
// An entry is fresh while its age is strictly below ttl.
type Memory struct {
	mu sync.RWMutex

	// key: city identifier
	data map[string]entry

	ttl time.Duration
	now func() time.Time

	hits   int
	misses int
}

// Option customizes a Memory cache.
type Option func(*Memory)

// WithClock replaces the time source; used by tests to move time forward.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a new Memory cache with the given freshness window.
func NewMemory(ttl time.Duration, opts ...Option) *Memory {
	m := &Memory{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the cached report for city if it is still fresh.
func (m *Memory) Get(city string) (weather.Report, bool) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[city]
	if !ok || !m.fresh(e, now) {
		m.misses++
		return weather.Report{}, false
	}
	m.hits++
	return e.report, true
}

// Set stores report for city, replacing any previous entry.
func (m *Memory) Set(city string, report weather.Report) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[city] = entry{report: report, fetchedAt: now}
}

// Sweep evicts expired entries and returns how many were removed.
func (m *Memory) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for city, e := range m.data {
		if !m.fresh(e, now) {
			delete(m.data, city)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, fresh or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Stats returns cache hit and miss counts.
func (m *Memory) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}

func (m *Memory) fresh(e entry, now time.Time) bool {
	return now.Sub(e.fetchedAt) < m.ttl
}

var _ weather.Cache = (*Memory)(nil)
