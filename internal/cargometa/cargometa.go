// Package cargometa derives loader units from a cargo metadata query, the
// build-system-native alternative to a checked-in rust-project.json.
package cargometa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/ctxlog"
	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// Metadata is the slice of `cargo metadata --format-version 1` output this
// tool consumes: the package/target graph plus the workspace member set.
type Metadata struct {
	Packages         []Package `json:"packages"`
	WorkspaceMembers []string  `json:"workspace_members"`
}

type Package struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Targets []Target `json:"targets"`
}

type Target struct {
	Name    string   `json:"name"`
	Kind    []string `json:"kind"`
	SrcPath string   `json:"src_path"`
}

// Query runs `cargo metadata` against the manifest at manifestPath. A failed
// command or undecodable output is fatal to the whole operation.
func Query(ctx context.Context, manifestPath string) (*Metadata, error) {
	logger := ctxlog.FromContext(ctx)
	cmd := exec.CommandContext(ctx, "cargo", "metadata",
		"--format-version", "1",
		"--manifest-path", manifestPath)
	logger.Debug("Running cargo metadata.", "manifest", manifestPath)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("cargo metadata failed: %s", bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("run cargo metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, fmt.Errorf("parse cargo metadata output: %w", err)
	}
	logger.Debug("cargo metadata decoded.", "packages", len(meta.Packages))

	return &meta, nil
}

// Units flattens the package/target graph into loader units: one per target
// whose src_path has a parent directory, keyed by target name. Targets of
// packages outside the workspace are marked immutable.
func (m *Metadata) Units() []project.Unit {
	members := make(map[string]bool, len(m.WorkspaceMembers))
	for _, id := range m.WorkspaceMembers {
		members[id] = true
	}

	var units []project.Unit
	for _, pkg := range m.Packages {
		for _, target := range pkg.Targets {
			root := filepath.Dir(target.SrcPath)
			if root == target.SrcPath {
				continue
			}
			units = append(units, project.Unit{
				Name:      target.Name,
				Root:      root,
				Immutable: !members[pkg.ID],
			})
		}
	}
	return units
}
