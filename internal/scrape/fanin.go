package scrape

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// maxConcurrentFetches bounds in-flight event-detail requests per client.
// Sequential fetching blew the run deadline on large listings, and unbounded
// fan-out trips source rate limits, so every detail fetch goes through this
// semaphore.
const maxConcurrentFetches = 10

// fetchAll fetches every id concurrently under the semaphore, preserving
// input order. Failed ids produce an error in errs; successes are always
// returned so one bad event does not sink the batch. Cancellation stops new
// acquisitions and lets in-flight fetches drain.
func fetchAll[T any](ctx context.Context, ids []string, fetch func(context.Context, string) (T, error)) ([]T, []error) {
	sem := semaphore.NewWeighted(maxConcurrentFetches)

	results := make([]*T, len(ids))
	errSlots := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		if err := sem.Acquire(ctx, 1); err != nil {
			errSlots[i] = err
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer sem.Release(1)
			v, err := fetch(ctx, id)
			if err != nil {
				errSlots[i] = err
				return
			}
			results[i] = &v
		}(i, id)
	}
	wg.Wait()

	out := make([]T, 0, len(ids))
	var errs []error
	for i := range ids {
		if errSlots[i] != nil {
			errs = append(errs, errSlots[i])
			continue
		}
		if results[i] != nil {
			out = append(out, *results[i])
		}
	}
	return out, errs
}
