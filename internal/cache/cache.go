// Package cache implements the presentation freshness cache (C9): one TTL
// governed entry per view, with a single eager-invalidation hook for
// focus-regained. It is owned exclusively by the presentation thread; the
// worker is stateless across requests.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// View names one of the five independent cached views.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewStats      View = "stats"
	ViewDetails    View = "details"
	ViewCategories View = "categories"
	ViewDailyGoals View = "daily_goals"
)

// ttlFor returns the freshness window for view. Dashboard/Stats get 5s;
// Details gets 10s for its larger payload; the remaining two views are
// cheap lookups and share the Dashboard/Stats window.
func ttlFor(v View) time.Duration {
	if v == ViewDetails {
		return 10 * time.Second
	}
	return 5 * time.Second
}

// Cache stores the most recent rendered DTO per view, grounded on the
// youfak-sub2api api-key auth cache's ristretto.NewCache +
// SetWithTTL/Get/Del usage (internal/service/api_key_auth_cache_impl.go),
// reused here for a single L1 presentation-side cache instead of an
// auth-lookup cache.
type Cache struct {
	inner *ristretto.Cache
}

// New constructs an empty cache sized for a handful of small DTOs.
func New() (*Cache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Get returns the cached value for view and whether it is present and
// still within its TTL. ristretto expires entries on its own clock, so a
// hit here is by definition fresh.
func (c *Cache) Get(view View) (interface{}, bool) {
	return c.inner.Get(string(view))
}

// Set stores value for view under its freshness TTL.
func (c *Cache) Set(view View, value interface{}) {
	c.inner.SetWithTTL(string(view), value, 1, ttlFor(view))
	c.inner.Wait()
}

// InvalidateAll treats every view's TTL as expired immediately. This is the
// only source of eager invalidation (focus-regained signal), per
// spec.md §4.9.
func (c *Cache) InvalidateAll() {
	c.inner.Clear()
}
