package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/loader"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/report"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/scheduler"
)

// App encapsulates the tool's dependencies and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	reporter report.Reporter
	sched    *scheduler.Scheduler
}

// NewApp constructs a fully initialized App with its own isolated logger.
func NewApp(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)

	var cache *scheduler.Cache
	if config.CacheSize > 0 {
		var err error
		cache, err = scheduler.NewCache(config.CacheSize)
		if err != nil {
			// Only reachable with a non-positive size, which NewConfig and
			// the guard above already rule out.
			panic(fmt.Errorf("build unit cache: %w", err))
		}
	}

	sched := scheduler.New(loader.New(), scheduler.Options{
		Workers: config.Workers,
		Cache:   cache,
	})

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		reporter: report.Slog{},
		sched:    sched,
	}
}
