package blurkit

// cacheOptions holds the configurable parameters of a [Cache].
type cacheOptions struct {
	capacity int
}

func defaultCacheOptions() cacheOptions {
	// Capacity 0 means the cache grows without bound, matching the
	// expectation that an app reuses a small set of gradient shapes.
	return cacheOptions{capacity: 0}
}

// Option configures a [Cache] created by [NewCache].
type Option func(*cacheOptions)

// WithCapacity sets a soft upper bound on the number of strips the cache
// retains. When the bound is exceeded the least recently used strips are
// evicted. A capacity of 0 (the default) disables eviction.
func WithCapacity(n int) Option {
	return func(o *cacheOptions) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}
