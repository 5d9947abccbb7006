// Package report isolates phase-timing diagnostics behind a small interface,
// keeping the loading pipeline free of direct diagnostic-stream writes.
package report

import (
	"context"
	"sync"
	"time"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
)

// Reporter receives the elapsed wall time of one named phase. Implementations
// must be safe for concurrent use.
type Reporter interface {
	Phase(ctx context.Context, name string, elapsed time.Duration)
}

// Slog reports phase durations through the context logger.
type Slog struct{}

func (Slog) Phase(ctx context.Context, name string, elapsed time.Duration) {
	ctxlog.FromContext(ctx).Info("Phase finished.", "phase", name, "elapsed_ms", elapsed.Milliseconds())
}

// Recorder remembers every reported phase. It exists for tests.
type Recorder struct {
	mu     sync.Mutex
	phases []RecordedPhase
}

type RecordedPhase struct {
	Name    string
	Elapsed time.Duration
}

func (r *Recorder) Phase(_ context.Context, name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, RecordedPhase{Name: name, Elapsed: elapsed})
}

func (r *Recorder) Phases() []RecordedPhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedPhase(nil), r.phases...)
}
