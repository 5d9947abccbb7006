// Package fsutil provides the directory enumeration primitive used by the
// source loader.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ListFiles recursively enumerates every regular file under root. Entries
// that cannot be read part-way through the walk are skipped rather than
// failing the enumeration; only a root that cannot be traversed at all is an
// error. No ordering is guaranteed to callers.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtree; tolerate and move on.
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// UnderAny reports whether path lies inside any of the given directories
// (or is one of them).
func UnderAny(path string, dirs []string) bool {
	for _, dir := range dirs {
		if under(path, dir) {
			return true
		}
	}
	return false
}

func under(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
