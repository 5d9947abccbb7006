// Package loader reads the complete source set of a single compilation unit.
package loader

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/fsutil"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// Loader turns one unit into the contents of every file under its roots.
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// LoadUnit enumerates and reads every regular file belonging to the unit,
// preserving encounter order. The first file that cannot be read fails the
// whole unit; success means every file was read. A root that cannot be
// traversed is reported the same way, never as a panic. Errors are scoped to
// the unit; callers decide whether they matter.
//
// When the unit carries a source override, the include directories are walked
// instead of the root, and anything under an exclude directory is dropped.
func (l *Loader) LoadUnit(ctx context.Context, unit project.Unit) ([]string, error) {
	logger := ctxlog.FromContext(ctx).With("unit", unit.Name)

	roots := unit.Include
	if len(roots) == 0 {
		roots = []string{unit.Root}
	}

	var contents []string
	for _, root := range roots {
		files, err := fsutil.ListFiles(root)
		if err != nil {
			return nil, err
		}
		logger.Debug("Enumerated unit root.", "root", root, "files", len(files))

		for _, file := range files {
			if fsutil.UnderAny(file, unit.Exclude) {
				continue
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, err
			}
			if !utf8.Valid(data) {
				return nil, fmt.Errorf("read %s: not valid UTF-8 text", file)
			}
			contents = append(contents, string(data))
		}
	}

	return contents, nil
}
