package settings

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Source yields the active mapping profile. The verification feature
// depends on this interface rather than the concrete repository.
type Source interface {
	Active(ctx context.Context) (*MappingProfile, error)
}

// CachedSource wraps a Source with a TTL cache and stampede protection, so
// a burst of compare requests resolves the profile with a single query.
type CachedSource struct {
	source Source
	ttl    time.Duration

	mu      sync.RWMutex
	profile *MappingProfile
	built   time.Time

	sf singleflight.Group
}

// NewCachedSource creates a cached profile source. A zero TTL disables
// caching entirely.
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, ttl: ttl}
}

// Active returns the cached profile, rebuilding it when expired.
func (c *CachedSource) Active(ctx context.Context) (*MappingProfile, error) {
	if c.ttl == 0 {
		return c.source.Active(ctx)
	}

	c.mu.RLock()
	if c.profile != nil && time.Since(c.built) <= c.ttl {
		p := c.profile
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sf.Do("active", func() (any, error) {
		profile, err := c.source.Active(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.profile = profile
		c.built = time.Now()
		c.mu.Unlock()
		return profile, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*MappingProfile), nil
}

// Invalidate drops the cached profile. Called after every settings update.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.profile = nil
	c.mu.Unlock()
}
