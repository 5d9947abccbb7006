package projectfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rust-project.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		path := writeDoc(t, `{
			"sysroot": "/toolchain/rust",
			"sysroot_src": "/toolchain/rust/lib/rustlib/src/rust",
			"crates": [
				{
					"display_name": "a",
					"root_module": "/ws/a/lib.rs",
					"edition": "2018",
					"deps": [],
					"is_workspace_member": true,
					"cfg": ["test"],
					"env": {},
					"is_proc_macro": false
				}
			],
			"runnables": [{"program": "buck2", "args": ["build", "//ws:a"], "cwd": "/ws", "kind": "check"}],
			"generated": "buck2 rust-project"
		}`)

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/toolchain/rust", p.Root)
		require.Len(t, p.Crates, 1)
		assert.Equal(t, project.Edition2018, p.Crates[0].Edition)
		require.Len(t, p.Runnables, 1)
		assert.Equal(t, project.RunnableCheck, p.Runnables[0].Kind)
	})

	t.Run("malformed document is fatal", func(t *testing.T) {
		t.Parallel()
		path := writeDoc(t, `{"sysroot": "/toolchain", "crates": [`)

		p, err := Load(path)
		require.Error(t, err)
		assert.Nil(t, p, "no partial model on parse failure")
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("schema violation is fatal", func(t *testing.T) {
		t.Parallel()
		path := writeDoc(t, `{
			"sysroot": "/toolchain",
			"crates": [{"display_name": "a", "root_module": "/ws/a/lib.rs", "edition": "1999"}],
			"runnables": [],
			"generated": "test"
		}`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown edition")
	})

	t.Run("missing sysroot is fatal", func(t *testing.T) {
		t.Parallel()
		path := writeDoc(t, `{"crates": [], "runnables": [], "generated": "test"}`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sysroot")
	})

	t.Run("unreadable path is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read project description")
	})
}
