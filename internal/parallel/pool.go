// Package parallel provides the worker-pool primitives the batch operations
// (internal/dropcutter, internal/pushcutter, internal/waterline) use to
// spread per-element work across goroutines while preserving input order in
// their output (spec.md §4.5), grounded on the worker-pool/channel/
// WaitGroup/atomic-counter shape of the teacher pack's
// internal/concurrency.concurrency.go.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// CallCounter is a contention-free counter for the number of primitive
// cutter-contact evaluations a batch operation performs, incremented from
// many worker goroutines without a mutex (spec.md §4.5, §6).
type CallCounter struct {
	n int64
}

// Add increments the counter by delta and returns the new total.
func (c *CallCounter) Add(delta int64) int64 { return atomic.AddInt64(&c.n, delta) }

// Load returns the current total.
func (c *CallCounter) Load() int64 { return atomic.LoadInt64(&c.n) }

// chunk is a contiguous [Start,End) sub-range of work indices.
type chunk struct {
	start, end int
}

// ForEach splits [0,n) into chunks of at most grain elements and runs fn
// over each index, using up to workers goroutines (workers<1 means
// GOMAXPROCS). If the resulting worker count is 1 or n<=grain, it runs
// serially in the calling goroutine, avoiding pool spin-up overhead for
// tiny inputs (spec.md §4.5: "a serial fallback path for small inputs").
//
// fn must be safe to call concurrently for distinct i; ForEach itself
// imposes no ordering on the calls, but it does not return until every
// index has been processed.
func ForEach(n, grain, workers int, fn func(i int)) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if grain < 1 {
		grain = 1
	}
	if n <= 0 {
		return
	}
	if workers == 1 || n <= grain {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunks := make(chan chunk, (n+grain-1)/grain)
	for start := 0; start < n; start += grain {
		end := start + grain
		if end > n {
			end = n
		}
		chunks <- chunk{start: start, end: end}
	}
	close(chunks)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				for i := c.start; i < c.end; i++ {
					fn(i)
				}
			}
		}()
	}
	wg.Wait()
}

// Invoke runs every fn concurrently and waits for all to finish
// (spec.md §4.5 parallel_invoke equivalent).
func Invoke(fns ...func()) {
	if len(fns) <= 1 {
		for _, f := range fns {
			f()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, f := range fns {
		f := f
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}
