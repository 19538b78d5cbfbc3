package blurkit

import (
	"github.com/TimOliver/BlurUIKit/internal/cache"
)

// Cache memoizes rasterized gradient strips by their request. A UI that
// animates or re-lays-out tends to ask for the same handful of strips over
// and over; the cache turns every repeat into a map lookup.
//
// Cache is safe for concurrent use.
type Cache struct {
	strips *cache.Cache[GradientRequest, *Strip]
}

// DefaultCache is the shared strip cache used by callers that do not need
// cache isolation. It has no capacity bound.
var DefaultCache = NewCache()

// GetOrCreate returns the strip for req from [DefaultCache].
func GetOrCreate(req GradientRequest) (*Strip, error) {
	return DefaultCache.GetOrCreate(req)
}

// NewCache returns an empty strip cache. By default the cache is unbounded;
// pass [WithCapacity] to bound it.
func NewCache(opts ...Option) *Cache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		strips: cache.New[GradientRequest, *Strip](o.capacity),
	}
}

// GetOrCreate returns the strip for req, rasterizing and retaining it on
// first use. Requests are matched field for field, so every later call with
// an equal request returns the same *Strip without touching pixel data.
//
// If rasterization fails, the error is returned and nothing is retained;
// GetOrCreate returns [ErrInvalidLength] without rasterizing when
// req.Length is not positive.
func (c *Cache) GetOrCreate(req GradientRequest) (*Strip, error) {
	if req.Length <= 0 {
		return nil, ErrInvalidLength
	}
	if req.StartLocation != clamp01(req.StartLocation) {
		Logger().Warn("gradient start location out of range, clamping",
			"start", req.StartLocation)
	}
	req = req.normalized()
	return c.strips.GetOrCreateErr(req, func() (*Strip, error) {
		Logger().Debug("rasterizing gradient strip",
			"length", req.Length,
			"axis", req.Axis,
			"start", req.StartLocation,
			"reversed", req.Reversed,
			"smooth", req.Smooth)
		return Rasterize(req)
	})
}

// Len returns the number of strips currently retained.
func (c *Cache) Len() int { return c.strips.Len() }

// Clear discards every retained strip.
func (c *Cache) Clear() { c.strips.Clear() }

// Stats returns a snapshot of the cache's counters.
func (c *Cache) Stats() CacheStats {
	s := c.strips.Stats()
	return CacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// CacheStats is a point-in-time snapshot of a [Cache]'s counters.
type CacheStats struct {
	// Len is the number of strips retained.
	Len int
	// Capacity is the configured soft bound, or 0 if unbounded.
	Capacity int
	// Hits counts lookups served from the cache.
	Hits uint64
	// Misses counts lookups that rasterized a new strip.
	Misses uint64
	// Evictions counts strips discarded to honor the capacity bound.
	Evictions uint64
}
