// Package projectfile reads a serialized workspace description
// (rust-project.json) off disk and produces the in-memory model.
package projectfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// Load reads and decodes the document at path. Any failure is fatal to the
// whole operation; there is no partial model.
func Load(path string) (*project.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project description: %w", err)
	}

	var p project.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if p.Root == "" {
		return nil, fmt.Errorf("parse %s: missing required field \"sysroot\"", path)
	}

	return &p, nil
}
