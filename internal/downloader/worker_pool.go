package downloader

import (
	"context"
	"sync"
)

// runPool calls fn for every index in [0, n) on up to workers goroutines.
// It stops handing out work once ctx is done and waits for running jobs.
func runPool(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers < 1 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	var err error
feed:
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			err = ctx.Err()
			break
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	return err
}
