// Package project defines the interchange model describing a Rust source
// workspace: its crates, their dependency edges, the sysroot, and pre-built
// runnables. It mirrors the rust-project.json schema understood by
// rust-analyzer for workspaces managed by build systems other than Cargo.
//
// The model is constructed once per invocation, held immutably while sources
// are loaded, and discarded afterwards. Deserialization is deliberately
// permissive (a dangling dependency index parses fine); structural checks are
// an explicit Validate call.
package project
