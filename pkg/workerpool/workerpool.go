// Package workerpool fans independent requests out to a bounded set of
// workers.
package workerpool

import (
	"context"
	"sync"
)

// Map calls fn for every item using at most workerCount goroutines and
// returns the results in input order. Items not started before ctx ends
// get fallback(ctx, item) instead, so every index is always filled.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) R,
	fallback func(context.Context, T) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	type task struct {
		index int
		item  T
	}
	tasks := make(chan task, workerCount)
	started := make([]bool, len(items))

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				results[t.index] = fn(ctx, t.item)
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task{index: i, item: item}:
			started[i] = true
		}
	}
	close(tasks)
	wg.Wait()

	for i, ok := range started {
		if !ok {
			results[i] = fallback(ctx, items[i])
		}
	}
	return results
}
