package cache

import (
	"sync"
	"time"

	"github.com/sangkips/bookstore-api/internal/domain/analytics"
)

// DefaultTTL is used when the configured TTL is not positive
const DefaultTTL = 5 * time.Minute

type reportEntry struct {
	report    *analytics.SalesReport
	fetchedAt time.Time
}

// ReportCache memoizes built sales reports in process memory. Entries expire
// after the TTL; callers put the data version into the key so a change to the
// underlying orders never serves a stale report.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]reportEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewReportCache creates a new report cache
func NewReportCache(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReportCache{
		entries: make(map[string]reportEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *ReportCache) Get(key string) (*analytics.SalesReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.report, true
}

// Set stores a report and drops expired entries
func (c *ReportCache) Set(key string, report *analytics.SalesReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = reportEntry{report: report, fetchedAt: now}
}

// Invalidate drops every entry
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]reportEntry)
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
