package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/cargometa"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/projectfile"
)

// Run executes the configured command. It returns an error only for fatal
// conditions (malformed document, failed metadata query); individual unit
// failures are reported through the logs and never fail the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App run started.", "command", a.config.Command, "path", a.config.Path)

	switch a.config.Command {
	case CommandJSON:
		return a.runJSON(ctx)
	case CommandCargo:
		return a.runCargo(ctx)
	default:
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}

func (a *App) runJSON(ctx context.Context) error {
	start := time.Now()
	proj, err := projectfile.Load(a.config.Path)
	if err != nil {
		return err
	}
	a.reporter.Phase(ctx, "parse project description", time.Since(start))

	// Dangling dependency indices are a defect in the document, but graph
	// edges play no part in loading, so they are worth a warning and nothing
	// more here.
	if err := proj.Validate(); err != nil {
		a.logger.Warn("Project has dangling dependency indices.", "error", err)
	}

	units, skipped := proj.ResolveUnits()
	for _, skip := range skipped {
		a.logger.Warn("Crate is not loadable, skipping.",
			"crate", int(skip.Index), "root_module", skip.RootModule, "reason", string(skip.Reason))
	}

	a.loadUnits(ctx, units)
	return nil
}

func (a *App) runCargo(ctx context.Context) error {
	start := time.Now()
	meta, err := cargometa.Query(ctx, a.config.Path)
	if err != nil {
		return err
	}
	a.reporter.Phase(ctx, "cargo metadata", time.Since(start))

	a.loadUnits(ctx, meta.Units())
	return nil
}

func (a *App) loadUnits(ctx context.Context, units []project.Unit) {
	a.logger.Info("🚀 Starting concurrent source load.", "units", len(units))

	start := time.Now()
	results := a.sched.Run(ctx, units)
	a.reporter.Phase(ctx, "walk and read sources", time.Since(start))

	loaded := make([]string, 0, len(results))
	failed := 0
	for name, result := range results {
		if result.Err != nil {
			failed++
			a.logger.Warn("Unit failed to load.", "unit", name, "error", result.Err)
			continue
		}
		loaded = append(loaded, name)
	}
	sort.Strings(loaded)

	a.logger.Info("🏁 Load finished.", "loaded", loaded, "failed", failed)
}
