package scheduler

import (
	"context"
	"runtime"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// UnitLoader loads the full source set of a single unit.
type UnitLoader interface {
	LoadUnit(ctx context.Context, unit project.Unit) ([]string, error)
}

// Result is the outcome of loading one unit: the ordered file contents on
// success, or the first I/O failure encountered. There is no partial
// success; Files is only meaningful when Err is nil.
type Result struct {
	Files []string
	Err   error
}

// Options tune a Scheduler. The zero value is usable: the pool is sized to
// the available CPUs and no cache is attached.
type Options struct {
	Workers int
	Cache   *Cache
}

// Scheduler fans unit loading out across a bounded worker pool and gathers
// per-unit results into one mapping.
type Scheduler struct {
	loader  UnitLoader
	workers int
	cache   *Cache
}

func New(loader UnitLoader, opts Options) *Scheduler {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		loader:  loader,
		workers: workers,
		cache:   opts.Cache,
	}
}

// Run loads every unit and returns the mapping from unit name to result.
// Units run independently: a unit's failure lands in its own entry and never
// aborts siblings, so Run itself cannot fail. Duplicate unit names collapse
// to a single entry; whichever worker stores last wins.
func (s *Scheduler) Run(ctx context.Context, units []project.Unit) map[string]Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scheduler starting.", "units", len(units), "workers", s.workers)

	results := xsync.NewMapOf[string, Result]()
	unitChan := make(chan project.Unit)

	var wg sync.WaitGroup
	wg.Add(len(units))
	for workerID := 0; workerID < s.workers; workerID++ {
		go s.worker(ctx, unitChan, results, &wg, workerID)
	}

	for _, unit := range units {
		unitChan <- unit
	}
	close(unitChan)
	wg.Wait()

	out := make(map[string]Result, results.Size())
	results.Range(func(name string, result Result) bool {
		out[name] = result
		return true
	})

	logger.Debug("Scheduler finished.", "results", len(out))
	return out
}
