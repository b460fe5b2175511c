package bulkcache

import (
	"context"
	"fmt"
	"os"

	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/worker"
)

// EnsureResult is the outcome of ensuring one (cycle, kind) file
type EnsureResult struct {
	Cycle     int
	Kind      model.BulkKind
	Path      string
	FromCache bool
	Error     error
}

// Err satisfies worker.Result
func (r *EnsureResult) Err() error { return r.Error }

// BatchResult summarizes an EnsureAll run
type BatchResult struct {
	Downloaded int
	Cached     int
	Failed     int
	Items      []*EnsureResult
}

// Total returns the number of (cycle, kind) pairs processed
func (r BatchResult) Total() int {
	return r.Downloaded + r.Cached + r.Failed
}

// HasFailures reports whether any file could not be ensured
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

type ensureJob struct {
	cache *Cache
	cycle int
	kind  model.BulkKind
}

func (j ensureJob) Execute(ctx context.Context) worker.Result {
	res := &EnsureResult{Cycle: j.cycle, Kind: j.kind}

	path := j.cache.Path(j.cycle, j.kind)
	if _, err := os.Stat(path); err == nil {
		res.Path = path
		res.FromCache = true
		return res
	}

	res.Path, res.Error = j.cache.Ensure(ctx, j.cycle, j.kind)
	return res
}

// EnsureAll fetches every (cycle, kind) combination through the worker pool.
// A failed download drops that cycle's file from the run; it never aborts
// the batch.
func (c *Cache) EnsureAll(ctx context.Context, cycles []int, kinds []model.BulkKind, workers int) (BatchResult, error) {
	for _, cycle := range cycles {
		if !model.ValidCycle(cycle) {
			return BatchResult{}, fmt.Errorf("invalid cycle %d", cycle)
		}
	}

	jobs := make([]worker.Job, 0, len(cycles)*len(kinds))
	for _, cycle := range cycles {
		for _, kind := range kinds {
			jobs = append(jobs, ensureJob{cache: c, cycle: cycle, kind: kind})
		}
	}

	pool := worker.NewPool(workers)
	results := pool.Run(ctx, jobs)

	var batch BatchResult
	for _, r := range results {
		item := r.(*EnsureResult)
		batch.Items = append(batch.Items, item)
		switch {
		case item.Error != nil:
			batch.Failed++
		case item.FromCache:
			batch.Cached++
		default:
			batch.Downloaded++
		}
	}

	return batch, nil
}
