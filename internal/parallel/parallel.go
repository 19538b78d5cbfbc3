// Package parallel provides a band-parallel loop helper for pixel passes.
//
// The blur filters process independent rows; For splits the row range into
// contiguous bands and runs them on a bounded number of goroutines. Output
// never depends on the worker count because bands partition the range
// exactly.
package parallel

import (
	"runtime"
	"sync"
)

// serialThreshold is the range size below which For always runs serially.
// Goroutine startup costs more than a few hundred band iterations.
const serialThreshold = 64

// For runs fn over contiguous bands covering [0, n).
// Each invocation receives a half-open interval [start, end).
//
// workers caps the number of goroutines; workers <= 0 uses GOMAXPROCS.
// For returns after every band has completed. It is a no-op for n <= 0.
func For(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := workers
	if bands > n {
		bands = n
	}
	if bands <= 1 || n < serialThreshold {
		fn(0, n)
		return
	}

	// Ceiling division so the last band is never longer than the others.
	size := (n + bands - 1) / bands

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
