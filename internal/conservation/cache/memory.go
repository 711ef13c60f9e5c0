package cache

import (
	"context"
	"sync"
	"time"

	"botanica/internal/conservation/models"
	"botanica/pkg/platform/sentinel"
)

type entry struct {
	assessment models.Assessment
	expiresAt  time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// InMemory is a process-local cache for single-instance deployments and tests.
type InMemory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type Option func(*InMemory)

func WithClock(now func() time.Time) Option {
	return func(c *InMemory) {
		c.now = now
	}
}

// NewInMemory constructs a cache. A zero ttl keeps entries forever.
func NewInMemory(ttl time.Duration, opts ...Option) *InMemory {
	c := &InMemory{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *InMemory) Get(_ context.Context, scientificName string) (*models.Assessment, error) {
	key := Key(scientificName)
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	now := c.now()
	if e.expired(now) {
		// A Set may have replaced the entry since the read lock was released.
		c.mu.Lock()
		e, ok = c.entries[key]
		if ok && e.expired(now) {
			delete(c.entries, key)
			ok = false
		}
		c.mu.Unlock()
		if !ok {
			return nil, sentinel.ErrNotFound
		}
	}
	a := e.assessment
	return &a, nil
}

func (c *InMemory) Set(_ context.Context, a models.Assessment) error {
	e := entry{assessment: a}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[Key(a.ScientificName)] = e
	c.mu.Unlock()
	return nil
}

func (c *InMemory) Delete(_ context.Context, scientificName string) error {
	c.mu.Lock()
	delete(c.entries, Key(scientificName))
	c.mu.Unlock()
	return nil
}
