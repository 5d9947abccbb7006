package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/report"
)

// writeWorkspace lays out two crate source trees and a rust-project.json
// describing them, returning the document path.
func writeWorkspace(t *testing.T) string {
	t.Helper()
	ws := t.TempDir()

	for crate, files := range map[string][]string{
		"alpha": {"lib.rs", "util.rs"},
		"beta":  {"lib.rs"},
	} {
		dir := filepath.Join(ws, crate)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for _, f := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("// "+crate), 0o644))
		}
	}

	doc := map[string]any{
		"sysroot": "/toolchain/rust",
		"crates": []map[string]any{
			{"display_name": "alpha", "root_module": filepath.Join(ws, "alpha", "lib.rs")},
			{"display_name": "beta", "root_module": filepath.Join(ws, "beta", "lib.rs")},
			// No display name: resolvable only as a skip.
			{"root_module": filepath.Join(ws, "gamma", "lib.rs")},
			// Resolvable, but the directory does not exist.
			{"display_name": "ghost", "root_module": filepath.Join(ws, "ghost", "lib.rs")},
		},
		"runnables": []any{},
		"generated": "test fixture",
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(ws, "rust-project.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunJSONEndToEnd(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{Command: CommandJSON, Path: writeWorkspace(t)})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	recorder := &report.Recorder{}
	testApp.reporter = recorder

	// Per-unit failures (the ghost crate) must not fail the run.
	require.NoError(t, testApp.Run(context.Background()))

	logs := logBuffer.String()
	assert.Contains(t, logs, "alpha")
	assert.Contains(t, logs, "beta")
	assert.Contains(t, logs, "Crate is not loadable, skipping.")
	assert.Contains(t, logs, "Unit failed to load.")
	assert.Contains(t, logs, "ghost")

	phases := recorder.Phases()
	require.Len(t, phases, 2)
	assert.Equal(t, "parse project description", phases[0].Name)
	assert.Equal(t, "walk and read sources", phases[1].Name)
}

func TestRunJSONMalformedDocumentIsFatal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rust-project.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	config, err := NewConfig(Config{Command: CommandJSON, Path: path})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, config)
	require.Error(t, testApp.Run(context.Background()))
}

func TestRunJSONDanglingIndexWarnsButLoads(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	dir := filepath.Join(ws, "solo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("// solo"), 0o644))

	doc := map[string]any{
		"sysroot": "/toolchain/rust",
		"crates": []map[string]any{
			{
				"display_name": "solo",
				"root_module":  filepath.Join(dir, "lib.rs"),
				"deps":         []map[string]any{{"crate": 5, "name": "ghost"}},
			},
		},
		"runnables": []any{},
		"generated": "test fixture",
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(ws, "rust-project.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	config, err := NewConfig(Config{Command: CommandJSON, Path: path})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, config)
	require.NoError(t, testApp.Run(context.Background()))

	logs := logBuffer.String()
	assert.Contains(t, logs, "dangling dependency indices")
	assert.Contains(t, logs, "solo")
}

func TestNewConfigValidation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Command: "frobnicate", Path: "x"})
	assert.ErrorContains(t, err, "unknown command")

	_, err = NewConfig(Config{Command: CommandJSON})
	assert.ErrorContains(t, err, "path")

	_, err = NewConfig(Config{Command: CommandJSON, Path: "x", LogFormat: "yaml"})
	assert.ErrorContains(t, err, "invalid log-format")

	_, err = NewConfig(Config{Command: CommandCargo, Path: "x", LogLevel: "loud"})
	assert.ErrorContains(t, err, "invalid log-level")

	cfg, err := NewConfig(Config{Command: CommandCargo, Path: "Cargo.toml", LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, CommandCargo, cfg.Command)
}
