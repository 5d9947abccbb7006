package project

import "path/filepath"

// Unit is one loadable compilation unit: a display name plus the directories
// its source files live under. When Include is empty the unit's files are
// everything under Root; otherwise they are everything under the Include
// directories that is not under an Exclude directory.
type Unit struct {
	Name    string
	Root    string
	Include []string
	Exclude []string

	// Immutable marks units outside the workspace. Their sources do not
	// change between loads, so their contents may be cached.
	Immutable bool
}

// SkipReason says why a crate could not be resolved to a loadable unit.
type SkipReason string

const (
	SkipNoDisplayName SkipReason = "crate has no display name"
	SkipNoParentDir   SkipReason = "root module has no parent directory"
)

// SkippedCrate records one crate excluded from loading, so callers can tell
// an empty workspace apart from a document whose crates were all dropped.
type SkippedCrate struct {
	Index      CrateIndex
	RootModule string
	Reason     SkipReason
}

// ResolveUnits maps every crate to its loadable unit. A crate resolves when
// it has a display name and its root module has a parent directory; anything
// else lands in the skipped list with a reason instead of a unit.
func (p *Project) ResolveUnits() ([]Unit, []SkippedCrate) {
	units := make([]Unit, 0, len(p.Crates))
	var skipped []SkippedCrate

	for i, crate := range p.Crates {
		if crate.DisplayName == "" {
			skipped = append(skipped, SkippedCrate{
				Index:      CrateIndex(i),
				RootModule: crate.RootModule,
				Reason:     SkipNoDisplayName,
			})
			continue
		}

		root := filepath.Dir(crate.RootModule)
		if root == crate.RootModule {
			// filepath.Dir is a fixed point only at "/" and ".", neither of
			// which names a file with a parent.
			skipped = append(skipped, SkippedCrate{
				Index:      CrateIndex(i),
				RootModule: crate.RootModule,
				Reason:     SkipNoParentDir,
			})
			continue
		}

		unit := Unit{
			Name:      crate.DisplayName,
			Root:      root,
			Immutable: !crate.IsWorkspaceMember,
		}
		if crate.Source != nil {
			unit.Include = crate.Source.IncludeDirs
			unit.Exclude = crate.Source.ExcludeDirs
		}
		units = append(units, unit)
	}

	return units, skipped
}
