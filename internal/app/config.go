package app

import (
	"errors"
	"fmt"
)

// Commands the app can dispatch to, one per ingestion front end.
const (
	CommandJSON  = "json"
	CommandCargo = "cargo"
)

// Config holds everything a run needs.
type Config struct {
	// Command selects the ingestion front end: CommandJSON reads a
	// rust-project.json document at Path, CommandCargo queries cargo
	// metadata for the manifest at Path.
	Command string
	Path    string

	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn", "error"

	// Workers bounds the loading pool; 0 means all available CPUs.
	Workers int

	// CacheSize enables the immutable-unit content cache when positive.
	CacheSize int
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandJSON, CommandCargo:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Path == "" {
		return nil, errors.New("a path to the project description or manifest is required")
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
