// Package cache provides a generic memoization cache.
//
// Cache[K, V] is a thread-safe map with GetOrCreate semantics: the create
// function runs under the cache lock, so concurrent requests for the same
// key never duplicate work. GetOrCreateErr supports fallible creation;
// failed creations are never inserted.
//
//	c := cache.New[string, int](0) // unbounded
//	v := c.GetOrCreate("key", func() int { return expensive() })
//
// The soft limit is optional. With a limit of 0 the cache grows until the
// owner calls Clear (the gradient cache's default). With a positive limit,
// oldest-by-access entries are evicted down to 3/4 of the limit whenever an
// insertion exceeds it.
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
