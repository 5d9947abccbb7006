package scheduler

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// worker is the processing loop for a single concurrent worker. Each unit it
// pulls runs to completion here; the loader does no internal parallelism.
func (s *Scheduler) worker(ctx context.Context, unitChan <-chan project.Unit, results *xsync.MapOf[string, Result], wg *sync.WaitGroup, workerID int) {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for unit := range unitChan {
		unitLogger := logger.With("unit", unit.Name)

		if files, ok := s.cache.Lookup(unit); ok {
			unitLogger.Debug("Cache hit, walk skipped.", "files", len(files))
			results.Store(unit.Name, Result{Files: files})
			wg.Done()
			continue
		}

		files, err := s.loader.LoadUnit(ctx, unit)
		if err != nil {
			unitLogger.Debug("Unit failed to load.", "error", err)
			results.Store(unit.Name, Result{Err: err})
			wg.Done()
			continue
		}

		unitLogger.Debug("Unit loaded.", "files", len(files))
		results.Store(unit.Name, Result{Files: files})
		s.cache.Remember(unit, files)
		wg.Done()
	}

	logger.Debug("Worker finished.")
}
