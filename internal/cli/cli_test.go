package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/app"
)

func TestParseJSONCommand(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"json", "/ws/rust-project.json"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, config)
	assert.Equal(t, app.CommandJSON, config.Command)
	assert.Equal(t, "/ws/rust-project.json", config.Path)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Zero(t, config.Workers)
}

func TestParseCargoCommandWithFlags(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{
		"--log-format", "json",
		"--log-level", "debug",
		"--workers", "4",
		"--cache-size", "64",
		"cargo", "/ws/Cargo.toml",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, app.CommandCargo, config.Command)
	assert.Equal(t, "/ws/Cargo.toml", config.Path)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 4, config.Workers)
	assert.Equal(t, 64, config.CacheSize)
}

func TestParseEnvironmentDefaults(t *testing.T) {
	t.Setenv("BENCH_READS_LOG_LEVEL", "warn")
	t.Setenv("BENCH_READS_WORKERS", "2")

	config, _, err := Parse([]string{"json", "/ws/rust-project.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, 2, config.Workers)
}

func TestParseNoArgumentsShowsHelp(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "USAGE")
}

func TestParseMissingPathArgument(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"json"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "exactly one path argument")
}

func TestParseUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--definitely-not-a-flag"}, &bytes.Buffer{})
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseInvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--log-format", "yaml", "json", "/ws/p.json"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-format")
}
