// Package cli translates command-line arguments into an app configuration.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating the program should exit cleanly (help was shown), or
// an ExitError for invalid invocations.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	// A .env file is optional; flags fall back to BENCH_READS_* variables
	// either way.
	_ = godotenv.Load()

	var config *app.Config
	capture := func(command string) cli.ActionFunc {
		return func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one path argument, got %d", c.NArg())
			}
			cfg, err := app.NewConfig(app.Config{
				Command:   command,
				Path:      c.Args().First(),
				LogFormat: strings.ToLower(c.String("log-format")),
				LogLevel:  strings.ToLower(c.String("log-level")),
				Workers:   c.Int("workers"),
				CacheSize: c.Int("cache-size"),
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		}
	}

	cliApp := &cli.App{
		Name:            "benchmark-rust-analyzer-reads",
		Usage:           "measure the cost of reading every source file a workspace's crates comprise",
		Writer:          output,
		ErrWriter:       output,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "log output format: 'text' or 'json'",
				EnvVars: []string{"BENCH_READS_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "logging level: 'debug', 'info', 'warn', or 'error'",
				EnvVars: []string{"BENCH_READS_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   0,
				Usage:   "worker pool size; 0 sizes the pool to the available CPUs",
				EnvVars: []string{"BENCH_READS_WORKERS"},
			},
			&cli.IntFlag{
				Name:    "cache-size",
				Value:   0,
				Usage:   "entries in the immutable-unit content cache; 0 disables it",
				EnvVars: []string{"BENCH_READS_CACHE_SIZE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "json",
				Usage:     "load units from a rust-project.json document",
				ArgsUsage: "<path to rust-project.json>",
				Action:    capture(app.CommandJSON),
			},
			{
				Name:      "cargo",
				Usage:     "load units from a cargo metadata query",
				ArgsUsage: "<path to Cargo.toml>",
				Action:    capture(app.CommandCargo),
			},
		},
	}

	if err := cliApp.Run(append([]string{cliApp.Name}, args...)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		// No subcommand ran: urfave/cli printed help (or the help flag was
		// given), which is a clean exit.
		return nil, true, nil
	}
	return config, false, nil
}
