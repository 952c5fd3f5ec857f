// Package parallel provides chunked parallel execution over case indices.
package parallel

import (
	"runtime"
	"sync"
)

// ForEachChunk splits items across up to GOMAXPROCS workers and calls fn
// with the half-open index range each worker owns. It returns when every
// worker has finished.
func ForEachChunk(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > items {
		workers = items
	}

	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForEachChunkThreshold runs fn sequentially when items is at or below
// threshold, avoiding goroutine overhead on small collections.
func ForEachChunkThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	ForEachChunk(items, fn)
}
