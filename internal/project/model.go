package project

// Project is the root of a workspace description document.
type Project struct {
	Sysroot

	// Crates holds every compilation unit of the workspace. Producers must
	// include all transitive dependencies of every workspace member, plus the
	// sysroot's own crates (libstd, libcore, and friends). The model does not
	// enforce this; consumers rely on it.
	Crates []Crate `json:"crates"`

	// Runnables are pre-built invocation descriptors. They are opaque to the
	// loader and pass through unmodified.
	Runnables []Runnable `json:"runnables"`

	// Generated is a free-form tag identifying the tool that emitted the
	// document. It carries no meaning here.
	Generated string `json:"generated"`
}

// Sysroot locates the toolchain-provided baseline library set. Root is a
// superset of Src; Src exists for platforms where the standard library
// sources are packaged apart from binaries.
type Sysroot struct {
	Root string `json:"sysroot"`
	Src  string `json:"sysroot_src,omitempty"`
}

// Crate is one logical compilation unit.
type Crate struct {
	// DisplayName is cosmetic, but a crate without one cannot be resolved to
	// a loadable unit.
	DisplayName string `json:"display_name,omitempty"`

	// RootModule is the absolute path to the crate's entry source file. The
	// crate's source root is this path's parent directory unless Source
	// overrides it.
	RootModule string `json:"root_module"`

	Edition Edition `json:"edition"`

	// Deps are edges into the owning Project's Crates sequence. Every index
	// must be in range; see Project.Validate.
	Deps []Dep `json:"deps"`

	// IsWorkspaceMember marks crates that are edited locally. Crates outside
	// the workspace are treated as immutable, which enables content caching.
	IsWorkspaceMember bool `json:"is_workspace_member"`

	// Source optionally overrides the set of directories comprising this
	// crate. If two crates share a source file, they must declare the same
	// override; producers are trusted on this, the loader does not check.
	Source *Source `json:"source,omitempty"`

	// Cfg lists the activated conditional-compilation flags. Order carries
	// no meaning and duplicates are harmless.
	Cfg []string `json:"cfg"`

	Target string `json:"target,omitempty"`
	Build  *Build `json:"build,omitempty"`

	// Env holds environment variables scoped to this crate, typically
	// consumed by env! expansions.
	Env map[string]string `json:"env"`

	IsProcMacro bool `json:"is_proc_macro"`

	// ProcMacroDylibPath is required when IsProcMacro is set; the path points
	// at the compiled plugin (.so, .dylib, or .dll depending on platform).
	// Producers are trusted to supply it.
	ProcMacroDylibPath string `json:"proc_macro_dylib_path,omitempty"`
}

// Dep is a directed dependency edge: the target crate's index in the arena,
// plus the name under which the dependent crate refers to it. Several deps
// may point at the same index under different names.
type Dep struct {
	Crate CrateIndex `json:"crate"`
	Name  string     `json:"name"`
}

// CrateIndex addresses a crate within its Project's Crates sequence.
type CrateIndex int

// Source is an explicit file-set override: any file under an include
// directory belongs to the crate unless it is also under an exclude
// directory, recursively in both cases.
type Source struct {
	IncludeDirs []string `json:"include_dirs"`
	ExcludeDirs []string `json:"exclude_dirs"`
}

// Build carries build-system-specific metadata for a crate, such as the
// Buck/Bazel label and the path to the build description file it came from.
type Build struct {
	Label      string     `json:"label"`
	BuildFile  string     `json:"build_file"`
	TargetKind TargetKind `json:"target_kind"`
}

// Runnable is a pre-constructed invocation: program, arguments, working
// directory, and what kind of action it performs.
type Runnable struct {
	Program string       `json:"program"`
	Args    []string     `json:"args"`
	Cwd     string       `json:"cwd"`
	Kind    RunnableKind `json:"kind"`
}
