// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"popsum-core/sitestat"
)

// Config controls the accumulation pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	BatchSize int // rows per work unit; <=0 picks a default
}

const defaultBatch = 4096

// AccumulateFiles folds one or more statistic tables into running sums.
// With Threads <= 1 it is a plain sequential fold. Otherwise rows are
// partitioned into batches, each worker folds its batches into a private
// partial RunningSums, and the partials are merged at the end; the group
// fold is associative and commutative, so partition order cannot change
// the result. It returns the first error encountered (including context
// cancellation), and no sums on error: an aborted fold must not leak
// partially accumulated groups.
func AccumulateFiles(ctx context.Context, cfg Config, paths []string) (sitestat.RunningSums, error) {
	if cfg.Threads <= 1 {
		return accumulateSequential(ctx, paths)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatch
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan []sitestat.Record, cfg.Threads*2)
	partials := make(chan sitestat.RunningSums, cfg.Threads)

	// Workers: private partial sums, no locks.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			part := make(sitestat.RunningSums)
			for {
				select {
				case <-ctx.Done():
					return
				case batch, ok := <-jobs:
					if !ok {
						partials <- part
						return
					}
					for _, rec := range batch {
						part.Observe(rec)
					}
				}
			}
		}()
	}

	// Feed batches from each file in turn.
	var ferr error
	batch := make([]sitestat.Record, 0, cfg.BatchSize)
	flush := func() bool {
		if len(batch) == 0 {
			return true
		}
		b := batch
		batch = make([]sitestat.Record, 0, cfg.BatchSize)
		select {
		case jobs <- b:
			return true
		case <-ctx.Done():
			return false
		}
	}
feed:
	for _, path := range paths {
		err := sitestat.Stream(ctx, path, func(rec sitestat.Record) error {
			batch = append(batch, rec)
			if len(batch) == cap(batch) && !flush() {
				return ctx.Err()
			}
			return nil
		})
		if err != nil {
			ferr = err
			break feed
		}
	}
	if ferr == nil {
		flush()
	}
	close(jobs)
	wg.Wait()
	close(partials)

	if ferr != nil {
		return nil, ferr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sums := make(sitestat.RunningSums)
	for part := range partials {
		sums.Merge(part)
	}
	return sums, nil
}

func accumulateSequential(ctx context.Context, paths []string) (sitestat.RunningSums, error) {
	sums := make(sitestat.RunningSums)
	for _, path := range paths {
		err := sitestat.Stream(ctx, path, func(rec sitestat.Record) error {
			sums.Observe(rec)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sums, nil
}
